package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// QualitySuffix is appended to the pixel height to form a quality label
const QualitySuffix = "p"

// Quality is a human readable resolution label such as "720p"
type Quality string

// Format is a single media format reported by the extraction engine
type Format struct {
	ID     string
	Ext    string
	Height int
}

// MediaInfo is the metadata-only extraction result for a URL
type MediaInfo struct {
	ID      string
	Title   string
	Formats []Format
}

// NewQuality builds the label for a pixel height
func NewQuality(height int) Quality {
	return Quality(strconv.Itoa(height) + QualitySuffix)
}

// String returns the label
func (q Quality) String() string {
	return string(q)
}

// Height parses the pixel height out of the label
func (q Quality) Height() (int, error) {
	s := strings.TrimSpace(string(q))
	if !strings.HasSuffix(s, QualitySuffix) {
		return 0, fmt.Errorf("invalid quality label: %q", string(q))
	}
	h, err := strconv.Atoi(strings.TrimSuffix(s, QualitySuffix))
	if err != nil || h <= 0 {
		return 0, fmt.Errorf("invalid quality label: %q", string(q))
	}
	return h, nil
}

// QualitiesFromFormats returns the distinct heights of formats in the given
// container as quality labels, sorted ascending.
func QualitiesFromFormats(formats []Format, container string) []Quality {
	seen := make(map[int]struct{})
	heights := make([]int, 0, len(formats))
	for _, f := range formats {
		if f.Height <= 0 || f.Ext != container {
			continue
		}
		if _, ok := seen[f.Height]; ok {
			continue
		}
		seen[f.Height] = struct{}{}
		heights = append(heights, f.Height)
	}
	sort.Ints(heights)

	qualities := make([]Quality, 0, len(heights))
	for _, h := range heights {
		qualities = append(qualities, NewQuality(h))
	}
	return qualities
}

// Highest returns the last label of an ascending list, the default selection
func Highest(qualities []Quality) (Quality, bool) {
	if len(qualities) == 0 {
		return "", false
	}
	return qualities[len(qualities)-1], true
}

// ContainsQuality reports whether q is one of qualities
func ContainsQuality(qualities []Quality, q Quality) bool {
	for _, candidate := range qualities {
		if candidate == q {
			return true
		}
	}
	return false
}

// QualityLabels converts qualities into plain strings for select widgets
func QualityLabels(qualities []Quality) []string {
	labels := make([]string, len(qualities))
	for i, q := range qualities {
		labels[i] = q.String()
	}
	return labels
}
