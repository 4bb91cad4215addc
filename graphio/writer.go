package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvpath/dijkstra"
)

// WritePath renders one path: the vertex indices separated by single spaces,
// then "Total cost is X". With ok == false it writes "(No path)" and an
// infinite cost instead; cost is ignored in that case.
func WritePath(w io.Writer, path []int, cost int64, ok bool) error {
	if !ok {
		_, err := io.WriteString(w, "(No path)\nTotal cost is INF\n")
		return err
	}

	buf := make([]byte, 0, 8*len(path)+32)
	for i, v := range path {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}
	buf = append(buf, "\nTotal cost is "...)
	buf = strconv.AppendInt(buf, cost, 10)
	buf = append(buf, '\n')
	_, err := w.Write(buf)

	return err
}

// WriteReport writes "Path to v:" and its rendering for every vertex of res,
// in index order.
func WriteReport(w io.Writer, res *dijkstra.Result) error {
	bw := bufio.NewWriter(w)
	for v := range res.Dist {
		if _, err := fmt.Fprintf(bw, "Path to %d:\n", v); err != nil {
			return err
		}
		path, ok := dijkstra.ExtractPath(res.Dist, res.Prev, v)
		if err := WritePath(bw, path, res.Dist[v], ok); err != nil {
			return err
		}
	}

	return bw.Flush()
}
