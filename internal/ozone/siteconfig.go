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

package ozone

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SiteFileName is the synthetic site-configuration document written into the
// per-run working directory.
const SiteFileName = "ozone-site.xml"

// Failover tuning baked into every generated site file. Transient network
// blips during later stages are handled by the client's own failover, not by
// retry loops in the orchestrator.
const (
	failoverMaxAttempts = 15
	connectTimeoutMs    = 30000
)

const addressKeyPrefix = "ozone.om.address."

type siteProperty struct {
	Name  string `xml:"name"`
	Value string `xml:"value"`
}

type siteDocument struct {
	XMLName    xml.Name       `xml:"configuration"`
	Properties []siteProperty `xml:"property"`
}

// BuildSiteConfig renders the Hadoop-format property document describing the
// remote OM topology, security mode, and failover tuning. The rendering is
// pure: the same cluster always yields byte-identical output.
func BuildSiteConfig(c *Cluster) ([]byte, error) {
	ids := make([]string, 0, len(c.Nodes))
	for _, n := range c.Nodes {
		ids = append(ids, n.ID)
	}

	doc := siteDocument{}
	add := func(name, value string) {
		doc.Properties = append(doc.Properties, siteProperty{Name: name, Value: value})
	}
	add("ozone.om.service.ids", c.ServiceID)
	add(fmt.Sprintf("ozone.om.nodes.%s", c.ServiceID), strings.Join(ids, ","))
	for _, n := range c.Nodes {
		add(fmt.Sprintf("%s%s.%s", addressKeyPrefix, c.ServiceID, n.ID), c.NodeAddress(n))
	}
	if c.Secure {
		add("hadoop.security.authentication", "kerberos")
		add("ozone.om.kerberos.principal.pattern", "*")
	}
	add("ozone.client.failover.max.attempts", fmt.Sprintf("%d", failoverMaxAttempts))
	add("ipc.client.connect.timeout", fmt.Sprintf("%d", connectTimeoutMs))

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("unable to render site configuration: %w", err)
	}
	return []byte(xml.Header + string(body) + "\n"), nil
}

// WriteSiteConfig renders the site document and writes it into dir. The file
// is written once per run and never mutated afterward.
func WriteSiteConfig(c *Cluster, dir string) (string, error) {
	content, err := BuildSiteConfig(c)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, SiteFileName)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", &EnvironmentError{Op: "writing site configuration", Err: err}
	}
	return path, nil
}

// FirstNodeAddress scans a written site-configuration document for the first
// node-address entry under the given service id, in document order. It backs
// the fallback discovery strategy when the role query yields no leader.
func FirstNodeAddress(siteConfigPath, serviceID string) (string, error) {
	raw, err := os.ReadFile(siteConfigPath)
	if err != nil {
		return "", fmt.Errorf("unable to read site configuration: %w", err)
	}
	doc := siteDocument{}
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("unable to parse site configuration %s: %w", siteConfigPath, err)
	}
	prefix := addressKeyPrefix + serviceID + "."
	for _, p := range doc.Properties {
		if strings.HasPrefix(p.Name, prefix) && p.Value != "" {
			return p.Value, nil
		}
	}
	return "", fmt.Errorf("no node-address entries for service %q in %s", serviceID, siteConfigPath)
}
