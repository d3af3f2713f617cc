// Package parser turns raw, arbitrarily nested telemetry payloads into
// three lists of normalized records (node, interface, address), all tagged
// with one batch id and timestamp per invocation.
package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/netvista/telemetry-pipeline/records"
)

// Result is everything one extraction invocation produced. The three lists
// are always non-nil; a payload with nothing to extract yields empty lists,
// not an error.
type Result struct {
	BatchID    string
	Timestamp  string
	Nodes      []records.NodeRecord
	Interfaces []records.InterfaceRecord
	Addresses  []records.AddressRecord
}

func emptyResult(batchID, timestamp string) Result {
	return Result{
		BatchID:    batchID,
		Timestamp:  timestamp,
		Nodes:      []records.NodeRecord{},
		Interfaces: []records.InterfaceRecord{},
		Addresses:  []records.AddressRecord{},
	}
}

// Parser extracts normalized records from raw telemetry payloads.
// It holds no state between invocations and is safe for concurrent use.
type Parser struct{}

// NewParser creates a new telemetry parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse walks one raw payload and returns the extracted records. A fresh
// batch id and timestamp are generated up front and stamped on every record.
//
// Malformed entries and items are dropped individually. A payload that
// cannot be decoded at all, or anything unexpected enough to panic during
// traversal, fails the whole invocation: the returned Result carries three
// empty lists, never a partial set.
func (p *Parser) Parse(raw []byte) (res Result, err error) {
	batchID := uuid.NewString()
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	res = emptyResult(batchID, timestamp)

	defer func() {
		if r := recover(); r != nil {
			res = emptyResult(batchID, timestamp)
			err = fmt.Errorf("telemetry traversal panicked: %v", r)
		}
	}()

	var root json.RawMessage
	if uerr := json.Unmarshal(raw, &root); uerr != nil {
		return emptyResult(batchID, timestamp), fmt.Errorf("decode raw payload: %w", uerr)
	}

	p.walk(root, &res)
	return res, nil
}

// walk visits one payload node. Every node is exactly one of three
// variants: a sequence (recurse), an item (classify and extract), or
// anything else (discard silently - heterogeneous payloads are tolerated).
func (p *Parser) walk(raw json.RawMessage, res *Result) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return
	}

	switch trimmed[0] {
	case '[':
		var seq []json.RawMessage
		if err := json.Unmarshal(raw, &seq); err != nil {
			return
		}
		for _, element := range seq {
			p.walk(element, res)
		}
	case '{':
		var item records.RawItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return
		}
		p.extractItem(item, res)
	default:
		// scalar or null - nothing to extract
	}
}

// extractItem runs every matched family's extraction rule over the item's
// entries. Items without entries never reach extraction.
func (p *Parser) extractItem(item records.RawItem, res *Result) {
	if item.Entries == nil {
		return
	}

	for _, family := range Classify(item.Path) {
		switch family {
		case records.FamilyNode:
			extractNodes(item.Entries, res)
		case records.FamilyInterfaceStatus:
			extractInterfaceStatus(item.Entries, res)
		case records.FamilyInterfaceStats:
			extractInterfaceStats(item.Entries, res)
		case records.FamilyAddress:
			extractAddresses(item.Entries, res)
		}
	}
}
