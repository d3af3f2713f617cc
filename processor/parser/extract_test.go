package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netvista/telemetry-pipeline/records"
)

func rawEntries(t *testing.T, entries ...string) []json.RawMessage {
	t.Helper()
	out := make([]json.RawMessage, 0, len(entries))
	for _, e := range entries {
		out = append(out, json.RawMessage(e))
	}
	return out
}

func newResult() *Result {
	res := emptyResult("batch-1", "2026-08-31T00:00:00Z")
	return &res
}

func TestExtractNodes_FieldsCarriedVerbatim(t *testing.T) {
	res := newResult()

	extractNodes(rawEntries(t,
		`{"keys": {"node_name": "r1"}, "fields": {"software_version": "v24.3.2", "cpu_utilization": 17}}`,
	), res)

	require.Len(t, res.Nodes, 1)
	rec := res.Nodes[0]
	assert.Equal(t, "r1", rec.NodeName)
	assert.Equal(t, "batch-1", rec.BatchID)
	assert.Equal(t, "v24.3.2", rec.Fields["software_version"])
	assert.Equal(t, float64(17), rec.Fields["cpu_utilization"])
}

func TestExtractNodes_MissingNodeNameDropsEntryOnly(t *testing.T) {
	res := newResult()

	extractNodes(rawEntries(t,
		`{"keys": {}, "fields": {"software_version": "v24.3.2"}}`,
		`{"keys": {"node_name": ""}, "fields": {}}`,
		`{"keys": {"node_name": "r2"}, "fields": {}}`,
	), res)

	require.Len(t, res.Nodes, 1)
	assert.Equal(t, "r2", res.Nodes[0].NodeName)
}

func TestExtractNodes_UndecodableEntrySkipsSiblingsUnaffected(t *testing.T) {
	res := newResult()

	// keys with a non-string value cannot decode; only that entry drops
	extractNodes(rawEntries(t,
		`{"keys": {"node_name": 42}, "fields": {}}`,
		`"not an object"`,
		`{"keys": {"node_name": "r3"}, "fields": {}}`,
	), res)

	require.Len(t, res.Nodes, 1)
	assert.Equal(t, "r3", res.Nodes[0].NodeName)
}

func TestExtractInterfaceStatus_Defaults(t *testing.T) {
	res := newResult()

	extractInterfaceStatus(rawEntries(t,
		`{"keys": {"node_name": "r1", "interface_name": "eth0"}, "fields": {}}`,
	), res)

	require.Len(t, res.Interfaces, 1)
	rec, ok := res.Interfaces[0].(records.InterfaceStatusRecord)
	require.True(t, ok)
	assert.Equal(t, "", rec.AdminStatus)
	assert.Equal(t, "", rec.OperStatus)
}

func TestExtractInterfaceStatus_RequiresBothKeys(t *testing.T) {
	res := newResult()

	extractInterfaceStatus(rawEntries(t,
		`{"keys": {"node_name": "r1"}, "fields": {"admin_status": "enable"}}`,
		`{"keys": {"interface_name": "eth0"}, "fields": {"admin_status": "enable"}}`,
	), res)

	assert.Empty(t, res.Interfaces)
}

func TestExtractInterfaceStats_DefaultsAndValues(t *testing.T) {
	res := newResult()

	extractInterfaceStats(rawEntries(t,
		`{"keys": {"node_name": "r1", "interface_name": "eth0"}, "fields": {"in_octets": 100}}`,
	), res)

	require.Len(t, res.Interfaces, 1)
	rec, ok := res.Interfaces[0].(records.InterfaceStatsRecord)
	require.True(t, ok)
	assert.Equal(t, int64(100), rec.InOctets)
	assert.Equal(t, int64(0), rec.OutOctets)
	assert.Equal(t, int64(0), rec.InPackets)
	assert.Equal(t, int64(0), rec.OutPackets)
	assert.Equal(t, int64(0), rec.InErrors)
	assert.Equal(t, int64(0), rec.OutErrors)
}

func TestExtractInterfaceStats_NonNumericCounterFallsBackToZero(t *testing.T) {
	res := newResult()

	extractInterfaceStats(rawEntries(t,
		`{"keys": {"node_name": "r1", "interface_name": "eth0"}, "fields": {"in_octets": "lots"}}`,
	), res)

	require.Len(t, res.Interfaces, 1)
	rec := res.Interfaces[0].(records.InterfaceStatsRecord)
	assert.Equal(t, int64(0), rec.InOctets)
}

func TestExtractAddresses_AllKeysRequired(t *testing.T) {
	res := newResult()

	extractAddresses(rawEntries(t,
		`{"keys": {"node_name": "r1", "interface_name": "eth0"}, "fields": {"origin": "static"}}`,
	), res)

	assert.Empty(t, res.Addresses, "entry without address_ip-prefix must produce no record")
}

func TestExtractAddresses_Record(t *testing.T) {
	res := newResult()

	extractAddresses(rawEntries(t,
		`{
			"keys": {
				"node_name": "r1",
				"interface_name": "eth0",
				"subinterface_index": "0",
				"address_ip-prefix": "10.0.0.1/24"
			},
			"fields": {"origin": "static", "status": "preferred"}
		}`,
	), res)

	require.Len(t, res.Addresses, 1)
	rec := res.Addresses[0]
	assert.Equal(t, "r1", rec.NodeName)
	assert.Equal(t, "eth0", rec.InterfaceName)
	assert.Equal(t, "0", rec.SubinterfaceIndex)
	assert.Equal(t, "10.0.0.1/24", rec.AddressIPPrefix)
	assert.Equal(t, "static", rec.Origin)
	assert.Equal(t, "preferred", rec.Status)
}

func TestExtractAddresses_SubinterfaceIndexDefaultsEmpty(t *testing.T) {
	res := newResult()

	extractAddresses(rawEntries(t,
		`{
			"keys": {"node_name": "r1", "interface_name": "eth0", "address_ip-prefix": "10.0.0.1/24"},
			"fields": {}
		}`,
	), res)

	require.Len(t, res.Addresses, 1)
	assert.Equal(t, "", res.Addresses[0].SubinterfaceIndex)
	assert.Equal(t, "", res.Addresses[0].Origin)
	assert.Equal(t, "", res.Addresses[0].Status)
}
