package docstring

// splitSections divides lines into sections using style to recognize
// headers. Lines outside any recognized section are collected into prose
// sections; consecutive prose lines share one section. Inside a field
// section, a header indented deeper than the section's own header belongs
// to a field description.
func splitSections(style Style, lines []Line) []Section {
	var sections []Section

	proseStart := -1

	flushProse := func(end int) {
		if proseStart < 0 {
			return
		}

		sections = append(sections, Section{
			Kind:   SectionProse,
			Body:   lines[proseStart:end],
			Origin: spanOf(lines[proseStart:end]),
		})
		proseStart = -1
	}

	for i := 0; i < len(lines); {
		title, size, ok := style.SectionHeader(lines, i)
		if !ok {
			if proseStart < 0 {
				proseStart = i
			}

			i++

			continue
		}

		flushProse(i)

		kind, _ := LookupSection(title)
		header := lines[i]
		fields := style.Layout(kind) != LayoutProse
		start := i
		i += size

		for i < len(lines) {
			_, _, next := style.SectionHeader(lines, i)
			if next && (!fields || indentOf(lines[i].Text) <= indentOf(header.Text)) {
				break
			}

			if style.EndsSection(header, lines[i]) {
				break
			}

			i++
		}

		sections = append(sections, Section{
			Title:  title,
			Kind:   kind,
			Body:   lines[start+size : i],
			Origin: spanOf(lines[start:i]),
		})
	}

	flushProse(len(lines))

	return sections
}
