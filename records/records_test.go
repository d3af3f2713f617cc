package records

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeRecord_MarshalFlattensFields(t *testing.T) {
	rec := NodeRecord{
		NodeName:  "r1",
		BatchID:   "batch-1",
		Timestamp: "2026-08-31T00:00:00Z",
		Fields: map[string]any{
			"software_version": "v24.3.2",
			"cpu_utilization":  17,
		},
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, "r1", out["node_name"])
	assert.Equal(t, "batch-1", out["batch_id"])
	assert.Equal(t, "2026-08-31T00:00:00Z", out["timestamp"])
	assert.Equal(t, "v24.3.2", out["software_version"])
	assert.Equal(t, float64(17), out["cpu_utilization"])
	assert.NotContains(t, out, "fields", "fields must be spread, not nested")
}

func TestNodeRecord_FixedKeysWinOverFields(t *testing.T) {
	rec := NodeRecord{
		NodeName:  "r1",
		BatchID:   "batch-1",
		Timestamp: "ts",
		Fields:    map[string]any{"node_name": "imposter"},
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "r1", out["node_name"])
}

func TestNodeRecord_NilFields(t *testing.T) {
	rec := NodeRecord{NodeName: "r1", BatchID: "b", Timestamp: "ts"}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Len(t, out, 3)
}

func TestInterfaceRecordWireShapes(t *testing.T) {
	status := InterfaceStatusRecord{
		NodeName:      "r1",
		InterfaceName: "eth0",
		BatchID:       "b",
		Timestamp:     "ts",
		AdminStatus:   "enable",
		OperStatus:    "up",
	}
	stats := InterfaceStatsRecord{
		NodeName:      "r1",
		InterfaceName: "eth0",
		BatchID:       "b",
		Timestamp:     "ts",
		InOctets:      100,
	}

	statusJSON, err := json.Marshal(status)
	require.NoError(t, err)
	statsJSON, err := json.Marshal(stats)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"node_name": "r1", "interface_name": "eth0", "batch_id": "b", "timestamp": "ts",
		"admin_status": "enable", "oper_status": "up"
	}`, string(statusJSON))
	assert.JSONEq(t, `{
		"node_name": "r1", "interface_name": "eth0", "batch_id": "b", "timestamp": "ts",
		"in_octets": 100, "out_octets": 0, "in_packets": 0, "out_packets": 0,
		"in_errors": 0, "out_errors": 0
	}`, string(statsJSON))
}

func TestAddressRecordWireShape(t *testing.T) {
	rec := AddressRecord{
		NodeName:          "r1",
		InterfaceName:     "eth0",
		SubinterfaceIndex: "0",
		AddressIPPrefix:   "10.0.0.1/24",
		BatchID:           "b",
		Timestamp:         "ts",
		Origin:            "static",
		Status:            "preferred",
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	// input key is address_ip-prefix, output key is address_ip_prefix
	assert.JSONEq(t, `{
		"node_name": "r1", "interface_name": "eth0", "subinterface_index": "0",
		"address_ip_prefix": "10.0.0.1/24", "batch_id": "b", "timestamp": "ts",
		"origin": "static", "status": "preferred"
	}`, string(data))
}
