package parser

import (
	"strings"

	"github.com/netvista/telemetry-pipeline/records"
)

// Classify maps a dotted telemetry path to the record families it feeds.
// Matching is plain substring containment, non-exclusive: a path may feed
// several families, and a path matching nothing is simply not extracted.
func Classify(path string) []records.Family {
	var families []records.Family

	if strings.Contains(path, ".node.") {
		families = append(families, records.FamilyNode)
	}
	if strings.Contains(path, ".interface.status") {
		families = append(families, records.FamilyInterfaceStatus)
	}
	if strings.Contains(path, ".interface.statistics") {
		families = append(families, records.FamilyInterfaceStats)
	}
	if strings.Contains(path, ".subinterface.ipv4.address") || strings.Contains(path, ".subinterface.ipv6.address") {
		families = append(families, records.FamilyAddress)
	}

	return families
}
