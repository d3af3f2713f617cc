package records

import "encoding/json"

// Family identifies the structural record family a telemetry path maps to.
type Family int

const (
	FamilyNode Family = iota
	FamilyInterfaceStatus
	FamilyInterfaceStats
	FamilyAddress
)

// String returns the string representation of Family
func (f Family) String() string {
	switch f {
	case FamilyNode:
		return "node"
	case FamilyInterfaceStatus:
		return "interface_status"
	case FamilyInterfaceStats:
		return "interface_statistics"
	case FamilyAddress:
		return "address"
	default:
		return "unknown"
	}
}

// RawItem is one path-addressed telemetry unit inside a raw payload.
// Entries stay raw so a single undecodable entry can be dropped without
// losing its siblings.
type RawItem struct {
	Path    string            `json:"path"`
	Entries []json.RawMessage `json:"entries"`
}

// RawEntry is one key/field pair inside a telemetry item.
type RawEntry struct {
	Keys   map[string]string `json:"keys"`
	Fields map[string]any    `json:"fields"`
}

// NodeRecord carries node-level telemetry. The source entry's fields are
// merged verbatim into the marshaled object next to the fixed keys.
type NodeRecord struct {
	NodeName  string
	BatchID   string
	Timestamp string
	Fields    map[string]any
}

// MarshalJSON flattens Fields onto the top-level object. The fixed keys win
// if a field producer ever emits one of them.
func (r NodeRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Fields)+3)
	for k, v := range r.Fields {
		out[k] = v
	}
	out["node_name"] = r.NodeName
	out["batch_id"] = r.BatchID
	out["timestamp"] = r.Timestamp
	return json.Marshal(out)
}

// InterfaceRecord is the sealed union of the two interface record shapes.
// Status and statistics records for the same interface are never merged,
// even within one batch; downstream consumers expect them separately.
type InterfaceRecord interface {
	interfaceRecord()
}

// InterfaceStatusRecord carries admin/oper state for one interface.
type InterfaceStatusRecord struct {
	NodeName      string `json:"node_name"`
	InterfaceName string `json:"interface_name"`
	BatchID       string `json:"batch_id"`
	Timestamp     string `json:"timestamp"`
	AdminStatus   string `json:"admin_status"`
	OperStatus    string `json:"oper_status"`
}

func (InterfaceStatusRecord) interfaceRecord() {}

// InterfaceStatsRecord carries traffic counters for one interface.
type InterfaceStatsRecord struct {
	NodeName      string `json:"node_name"`
	InterfaceName string `json:"interface_name"`
	BatchID       string `json:"batch_id"`
	Timestamp     string `json:"timestamp"`
	InOctets      int64  `json:"in_octets"`
	OutOctets     int64  `json:"out_octets"`
	InPackets     int64  `json:"in_packets"`
	OutPackets    int64  `json:"out_packets"`
	InErrors      int64  `json:"in_errors"`
	OutErrors     int64  `json:"out_errors"`
}

func (InterfaceStatsRecord) interfaceRecord() {}

// AddressRecord carries one subinterface address assignment.
// The IP prefix is opaque here; nothing validates address semantics.
type AddressRecord struct {
	NodeName          string `json:"node_name"`
	InterfaceName     string `json:"interface_name"`
	SubinterfaceIndex string `json:"subinterface_index"`
	AddressIPPrefix   string `json:"address_ip_prefix"`
	BatchID           string `json:"batch_id"`
	Timestamp         string `json:"timestamp"`
	Origin            string `json:"origin"`
	Status            string `json:"status"`
}
