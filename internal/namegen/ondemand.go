package namegen

import "strings"

// generateOnDemand builds each name from independent uniform draws and
// redraws the whole name whenever it matches one already issued. Termination
// follows from the capacity check: there are always unused names left.
func (g *Generator) generateOnDemand(files []string, alphabet Alphabet, length int) Assignment {
	g.log.Info("using on-demand generation strategy", "files", len(files))

	n := alphabet.Len()
	issued := make(map[string]struct{}, len(files))
	out := make(Assignment, 0, len(files))

	var b strings.Builder
	for _, path := range files {
		var name string
		for {
			b.Reset()
			for range length {
				b.WriteRune(alphabet.At(g.rng.IntN(n)))
			}
			name = b.String()
			if _, taken := issued[name]; !taken {
				break
			}
			g.log.Debug("random name conflict, retrying", "name", name)
		}
		issued[name] = struct{}{}
		out = append(out, Pair{Path: path, Name: name})
	}

	g.log.Debug("generated random names", "count", len(out))
	return out
}
