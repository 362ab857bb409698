// Package explain records how a resolution pass expanded its inputs and
// renders the trace as a graph.
//
// # Usage
//
// Register a [Recorder] as the resolve hooks, run a pass, then render:
//
//	rec := explain.NewRecorder()
//	observability.SetResolveHooks(rec)
//	trees, err := ctx.ResolveAsFileTrees()
//	dot := explain.ToDOT(rec.Nodes(), explain.Options{})
//	svg, err := explain.RenderSVG(dot)
//
// Each [Node] is one classified element. Edges run from an element to the
// elements it expanded into: the members of a sequence, the contents of a
// container or nested context, the value behind a deferred value or task.
package explain
