package objfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseMTL reads a material library and returns material name to diffuse
// texture path (map_Kd), as written in the file.
func ParseMTL(r io.Reader) (map[string]string, error) {
	textures := make(map[string]string)
	current := ""

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		switch {
		case strings.HasPrefix(line, "newmtl "):
			current = strings.TrimSpace(line[len("newmtl "):])
		case strings.HasPrefix(line, "map_Kd ") && current != "":
			textures[current] = strings.TrimSpace(line[len("map_Kd "):])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading mtl: %w", err)
	}
	return textures, nil
}
