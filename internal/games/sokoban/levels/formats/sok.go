package formats

import (
	"strings"
)

// ParseSOK parses an ASCII level file.
// Lines starting with "::" are comments; a comment of the form
// ":: key: value" sets the level name or author, or adds metadata.
func ParseSOK(data []byte) (Level, error) {
	var rows []string
	meta := make(map[string]string)

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(strings.TrimSpace(line), CommentPrefix) {
			comment := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), CommentPrefix))
			if key, value, ok := strings.Cut(comment, ":"); ok {
				meta[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
			}
			continue
		}
		rows = append(rows, line)
	}

	level, err := DecodeRows(rows)
	if err != nil {
		return Level{}, err
	}

	level.ID = meta["id"]
	level.Name = meta["name"]
	level.Author = meta["author"]
	delete(meta, "id")
	delete(meta, "name")
	delete(meta, "author")
	if len(meta) > 0 {
		level.Metadata = meta
	}
	return level, nil
}
