package utils

var tagColors = []string{"blue", "green", "red", "purple", "orange"}

// ColorForTag picks a stable palette color from the code points of the tag.
func ColorForTag(tag string) string {
	sum := 0
	for _, r := range tag {
		sum += int(r)
	}
	return tagColors[sum%len(tagColors)]
}
