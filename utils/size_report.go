package utils

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// SizeReport is a hierarchical byte footprint of a component.
type SizeReport struct {
	Name       string       `json:"name" yaml:"name"`
	TotalBytes int          `json:"total_bytes" yaml:"total_bytes"`
	Children   []SizeReport `json:"children,omitempty" yaml:"children,omitempty"`
}

// String returns the report as an indented tree with humanized sizes.
func (r SizeReport) String() string {
	var sb strings.Builder
	r.buildString(&sb, 0)
	return sb.String()
}

func (r SizeReport) buildString(sb *strings.Builder, indent int) {
	prefix := strings.Repeat("  ", indent)
	fmt.Fprintf(sb, "%s- %s: %s\n", prefix, r.Name, humanize.IBytes(uint64(r.TotalBytes)))
	for _, child := range r.Children {
		child.buildString(sb, indent+1)
	}
}
