/*
Copyright © 2025 The hdfs-ozone-migration authors

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

// Package ozone assembles the client environment for a remote,
// highly-available Ozone Manager service whose topology is unknown to the
// local cluster, and discovers which of its peers is the current leader.
package ozone

import (
	"net"
	"strconv"
)

// PeerNode is one member of the remote OM quorum.
type PeerNode struct {
	ID   string
	Host string
}

// Cluster is the addressing information for one OM service. Built once from
// the run configuration and immutable afterward.
type Cluster struct {
	ServiceID string
	Nodes     []PeerNode
	Port      int
	Secure    bool
}

// NewCluster pairs node ids with hostnames positionally. The lists are
// validated for length and uniqueness at configuration-load time.
func NewCluster(serviceID string, ids, hosts []string, port int, secure bool) *Cluster {
	nodes := make([]PeerNode, 0, len(ids))
	for i, id := range ids {
		nodes = append(nodes, PeerNode{ID: id, Host: hosts[i]})
	}
	return &Cluster{
		ServiceID: serviceID,
		Nodes:     nodes,
		Port:      port,
		Secure:    secure,
	}
}

// NodeAddress returns the host:port RPC address for a peer.
func (c *Cluster) NodeAddress(n PeerNode) string {
	return net.JoinHostPort(n.Host, strconv.Itoa(c.Port))
}
