// Package payload generates synthetic raw telemetry payloads shaped like
// the device export the processor consumes: path-addressed items with
// keys/fields entries, some of them nested one list level deeper.
package payload

import (
	"fmt"
	"math/rand"
)

const (
	nodePath        = "network-device.node.state"
	statusPath      = "network-device.interface.status"
	statsPath       = "network-device.interface.statistics"
	ipv4AddressPath = "network-device.subinterface.ipv4.address"
	ipv6AddressPath = "network-device.subinterface.ipv6.address"
)

var softwareVersions = []string{"v23.10.1", "v24.3.2", "v24.7.1"}

type item struct {
	Path    string  `json:"path"`
	Entries []entry `json:"entries"`
}

type entry struct {
	Keys   map[string]string `json:"keys"`
	Fields map[string]any    `json:"fields"`
}

// Generator builds raw telemetry payloads for a fixed fleet size
type Generator struct {
	nodeCount int
}

// NewGenerator creates a generator simulating nodeCount devices
func NewGenerator(nodeCount int) *Generator {
	return &Generator{
		nodeCount: nodeCount,
	}
}

// Batch returns one raw payload covering the whole fleet. Interface items
// are grouped into a nested list on purpose - the processor flattens
// arbitrarily nested payloads and real exports arrive that way too.
func (g *Generator) Batch() []any {
	var out []any

	for i := 1; i <= g.nodeCount; i++ {
		nodeName := fmt.Sprintf("node%d", i)
		interfaceName := fmt.Sprintf("ethernet-1/%d", 1+rand.Intn(4))

		out = append(out, g.nodeItem(nodeName))
		out = append(out, []any{
			g.statusItem(nodeName, interfaceName),
			g.statsItem(nodeName, interfaceName),
		})
		out = append(out, g.addressItem(nodeName, interfaceName, i))
	}

	return out
}

func (g *Generator) nodeItem(nodeName string) item {
	return item{
		Path: nodePath,
		Entries: []entry{{
			Keys: map[string]string{"node_name": nodeName},
			Fields: map[string]any{
				"software_version":   softwareVersions[rand.Intn(len(softwareVersions))],
				"cpu_utilization":    rand.Intn(100),
				"memory_utilization": rand.Intn(100),
			},
		}},
	}
}

func (g *Generator) statusItem(nodeName, interfaceName string) item {
	operStatus := "up"
	if rand.Intn(10) == 0 {
		operStatus = "down"
	}

	return item{
		Path: statusPath,
		Entries: []entry{{
			Keys: map[string]string{
				"node_name":      nodeName,
				"interface_name": interfaceName,
			},
			Fields: map[string]any{
				"admin_status": "enable",
				"oper_status":  operStatus,
			},
		}},
	}
}

func (g *Generator) statsItem(nodeName, interfaceName string) item {
	return item{
		Path: statsPath,
		Entries: []entry{{
			Keys: map[string]string{
				"node_name":      nodeName,
				"interface_name": interfaceName,
			},
			Fields: map[string]any{
				"in_octets":   rand.Int63n(10_000_000_000),
				"out_octets":  rand.Int63n(10_000_000_000),
				"in_packets":  rand.Int63n(10_000_000),
				"out_packets": rand.Int63n(10_000_000),
				"in_errors":   rand.Int63n(1000),
				"out_errors":  rand.Int63n(1000),
			},
		}},
	}
}

func (g *Generator) addressItem(nodeName, interfaceName string, octet int) item {
	path := ipv4AddressPath
	prefix := fmt.Sprintf("10.0.%d.1/24", octet%256)
	if rand.Intn(4) == 0 {
		path = ipv6AddressPath
		prefix = fmt.Sprintf("2001:db8::%x/64", octet)
	}

	return item{
		Path: path,
		Entries: []entry{{
			Keys: map[string]string{
				"node_name":          nodeName,
				"interface_name":     interfaceName,
				"subinterface_index": "0",
				"address_ip-prefix":  prefix,
			},
			Fields: map[string]any{
				"origin": "static",
				"status": "preferred",
			},
		}},
	}
}
