package document

import "strings"

// Sync brings the document to text through line edits instead of a full
// re-lex. Leading and trailing lines that did not change are kept; the lines
// in between go through SetLine, InsertLine and DeleteLine, so only blocks
// whose text or carry-in changed are lexed again. It returns the number of
// blocks lexed.
func (d *Document) Sync(text string) (int, error) {
	lines := strings.Split(text, "\n")
	span := d.begin("sync")

	prefix := 0
	for prefix < len(lines) && prefix < len(d.blocks) && d.Line(prefix) == lines[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(lines)-prefix && suffix < len(d.blocks)-prefix &&
		d.Line(len(d.blocks)-1-suffix) == lines[len(lines)-1-suffix] {
		suffix++
	}
	oldMid := len(d.blocks) - prefix - suffix
	newMid := lines[prefix : len(lines)-suffix]

	total := 0
	apply := func(n int, err error) error {
		total += n
		return err
	}
	shared := min(oldMid, len(newMid))
	for k := 0; k < shared; k++ {
		if err := apply(d.SetLine(prefix+k, newMid[k])); err != nil {
			return total, err
		}
	}
	for k := shared; k < len(newMid); k++ {
		if err := apply(d.InsertLine(prefix+k, newMid[k])); err != nil {
			return total, err
		}
	}
	// oldMid > len(newMid) leaves at least one block, so DeleteLine never
	// hits the only-block case
	for k := shared; k < oldMid; k++ {
		if err := apply(d.DeleteLine(prefix + shared)); err != nil {
			return total, err
		}
	}

	span.Line(prefix + 1).Blocks(total).End("")
	return total, nil
}
