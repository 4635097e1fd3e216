package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/karalab/karasub/internal/timecode"
)

// ParseSRT reads an SRT document. Malformed blocks (fewer than three lines,
// missing "-->" separator, unparsable times) are skipped rather than fatal;
// a missing or invalid index is replaced by a running counter. Time values
// are never substituted.
func ParseSRT(r io.Reader) ([]Segment, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var segments []Segment
	var block []string
	first := true

	flush := func() {
		if len(block) > 0 {
			if seg, ok := parseBlock(block, len(segments)+1); ok {
				segments = append(segments, seg)
			}
			block = nil
		}
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		block = append(block, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading SRT input: %w", err)
	}
	flush()

	return segments, nil
}

// ParseSRTFile is ParseSRT over a file on disk.
func ParseSRTFile(path string) ([]Segment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SRT file: %w", err)
	}
	defer file.Close()

	return ParseSRT(file)
}

func parseBlock(lines []string, fallbackIndex int) (Segment, bool) {
	if len(lines) < 3 {
		return Segment{}, false
	}

	index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		index = fallbackIndex
	}

	timeLine := lines[1]
	if !strings.Contains(timeLine, "-->") {
		return Segment{}, false
	}
	startText, endText, _ := strings.Cut(timeLine, "-->")
	start, err := timecode.Parse(startText)
	if err != nil {
		return Segment{}, false
	}
	end, err := timecode.Parse(endText)
	if err != nil {
		return Segment{}, false
	}

	return Segment{
		Index: index,
		Start: start,
		End:   end,
		Text:  strings.TrimSpace(strings.Join(lines[2:], "\n")),
	}, true
}
