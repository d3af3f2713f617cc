package parser

import (
	"encoding/json"

	"github.com/netvista/telemetry-pipeline/records"
)

// decodeEntry decodes a single raw entry. An entry that fails to decode
// (for example a non-string value inside keys) is dropped on its own;
// its siblings still get extracted.
func decodeEntry(raw json.RawMessage) (records.RawEntry, bool) {
	var entry records.RawEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return records.RawEntry{}, false
	}
	return entry, true
}

// stringField returns the named field as a string, or "" when the field is
// absent or not a string.
func stringField(fields map[string]any, key string) string {
	if s, ok := fields[key].(string); ok {
		return s
	}
	return ""
}

// intField returns the named field as an integer counter, or 0 when the
// field is absent or not numeric.
func intField(fields map[string]any, key string) int64 {
	switch v := fields[key].(type) {
	case float64:
		return int64(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}

// extractNodes appends one node record per entry carrying a node_name.
// All entry fields are carried over verbatim.
func extractNodes(entries []json.RawMessage, res *Result) {
	for _, raw := range entries {
		entry, ok := decodeEntry(raw)
		if !ok {
			continue
		}

		nodeName := entry.Keys["node_name"]
		if nodeName == "" {
			continue
		}

		res.Nodes = append(res.Nodes, records.NodeRecord{
			NodeName:  nodeName,
			BatchID:   res.BatchID,
			Timestamp: res.Timestamp,
			Fields:    entry.Fields,
		})
	}
}

// extractInterfaceStatus appends one status record per entry carrying both
// node_name and interface_name. Missing statuses default to "".
func extractInterfaceStatus(entries []json.RawMessage, res *Result) {
	for _, raw := range entries {
		entry, ok := decodeEntry(raw)
		if !ok {
			continue
		}

		nodeName := entry.Keys["node_name"]
		interfaceName := entry.Keys["interface_name"]
		if nodeName == "" || interfaceName == "" {
			continue
		}

		res.Interfaces = append(res.Interfaces, records.InterfaceStatusRecord{
			NodeName:      nodeName,
			InterfaceName: interfaceName,
			BatchID:       res.BatchID,
			Timestamp:     res.Timestamp,
			AdminStatus:   stringField(entry.Fields, "admin_status"),
			OperStatus:    stringField(entry.Fields, "oper_status"),
		})
	}
}

// extractInterfaceStats appends one statistics record per entry carrying
// both node_name and interface_name. Missing counters default to 0.
func extractInterfaceStats(entries []json.RawMessage, res *Result) {
	for _, raw := range entries {
		entry, ok := decodeEntry(raw)
		if !ok {
			continue
		}

		nodeName := entry.Keys["node_name"]
		interfaceName := entry.Keys["interface_name"]
		if nodeName == "" || interfaceName == "" {
			continue
		}

		res.Interfaces = append(res.Interfaces, records.InterfaceStatsRecord{
			NodeName:      nodeName,
			InterfaceName: interfaceName,
			BatchID:       res.BatchID,
			Timestamp:     res.Timestamp,
			InOctets:      intField(entry.Fields, "in_octets"),
			OutOctets:     intField(entry.Fields, "out_octets"),
			InPackets:     intField(entry.Fields, "in_packets"),
			OutPackets:    intField(entry.Fields, "out_packets"),
			InErrors:      intField(entry.Fields, "in_errors"),
			OutErrors:     intField(entry.Fields, "out_errors"),
		})
	}
}

// extractAddresses appends one address record per entry carrying node_name,
// interface_name and address_ip-prefix. The prefix is opaque; no address
// validation happens here.
func extractAddresses(entries []json.RawMessage, res *Result) {
	for _, raw := range entries {
		entry, ok := decodeEntry(raw)
		if !ok {
			continue
		}

		nodeName := entry.Keys["node_name"]
		interfaceName := entry.Keys["interface_name"]
		ipPrefix := entry.Keys["address_ip-prefix"]
		if nodeName == "" || interfaceName == "" || ipPrefix == "" {
			continue
		}

		res.Addresses = append(res.Addresses, records.AddressRecord{
			NodeName:          nodeName,
			InterfaceName:     interfaceName,
			SubinterfaceIndex: entry.Keys["subinterface_index"],
			AddressIPPrefix:   ipPrefix,
			BatchID:           res.BatchID,
			Timestamp:         res.Timestamp,
			Origin:            stringField(entry.Fields, "origin"),
			Status:            stringField(entry.Fields, "status"),
		})
	}
}
