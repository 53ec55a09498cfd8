// Package render draws search results as Graphviz diagrams.
package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/rhartert/spsearch/search"
	"github.com/rhartert/spsearch/search/paths"
)

func header(buf *bytes.Buffer) {
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")
}

// TreeDOT converts a traversal tree to Graphviz DOT format. Each node is
// labeled with its distance from the root and the root is filled in grey.
// Nodes are listed in the order their distance became final.
func TreeDOT[N comparable](tree *search.GraphTree[N]) string {
	var buf bytes.Buffer
	header(&buf)

	for _, n := range tree.Nodes() {
		d, _ := tree.Distance(n)
		attrs := fmt.Sprintf("label=%q", fmt.Sprintf("%v\n%s", n, fmtWeight(d)))
		if n == tree.Root() {
			attrs += ", fillcolor=lightgrey"
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", fmt.Sprint(n), attrs)
	}

	buf.WriteString("\n")
	for _, n := range tree.Nodes() {
		if p, ok := tree.Parent(n); ok {
			fmt.Fprintf(&buf, "  %q -> %q;\n", fmt.Sprint(p), fmt.Sprint(n))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// PathDOT converts a path to Graphviz DOT format. An invalid path yields an
// empty graph.
func PathDOT[N any](p paths.Path[N]) string {
	var buf bytes.Buffer
	header(&buf)

	if p.Valid() {
		fmt.Fprintf(&buf, "  label=%q;\n", "weight "+fmtWeight(p.Weight()))
		for i := 0; i < p.Length(); i++ {
			fmt.Fprintf(&buf, "  %q;\n", fmt.Sprint(p.Node(i)))
		}
		buf.WriteString("\n")
		for i := 1; i < p.Length(); i++ {
			fmt.Fprintf(&buf, "  %q -> %q;\n", fmt.Sprint(p.Node(i-1)), fmt.Sprint(p.Node(i)))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so that the diagram scales with
// its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
