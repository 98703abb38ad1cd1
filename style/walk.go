package style

import "sort"

// Walk calls fn for every primitive field under c, depth first in
// declaration order. path is the dotted key path from c.
func Walk(c Compound, fn func(path string, f Field)) {
	walk("", c, fn)
}

func walk(prefix string, c Compound, fn func(string, Field)) {
	for _, f := range c.Fields() {
		path := joinPath(prefix, f.Name)
		if f.Nested != nil {
			walk(path, f.Nested, fn)
			continue
		}
		fn(path, f)
	}
}

// Preserve visits every image and font reachable from live style state:
// the items and fonts of the tree under root, and the values saved on the
// item and font stacks that a later pop will restore. Each visitor may
// rewrite the reference in place. The first error stops the walk.
func Preserve(root Compound, stacks Stacks, image func(*Image) error, font func(*Font) error) error {
	var err error
	visitItem := func(it *Item) {
		if err != nil {
			return
		}
		if img := it.ImageRef(); img != nil {
			err = image(img)
		}
	}
	visitFont := func(f *Font) {
		if err == nil {
			err = font(f)
		}
	}

	Walk(root, func(_ string, f Field) {
		switch {
		case f.Item != nil:
			visitItem(f.Item)
		case f.Font != nil:
			visitFont(f.Font)
		}
	})
	if stacks != nil {
		stacks.SavedItems(visitItem)
		stacks.SavedFonts(visitFont)
	}
	return err
}

// UnknownKeys returns the dotted paths of keys in t that name no field of
// c. Push ignores such keys.
func UnknownKeys(c Compound, t Table) []string {
	var out []string
	unknownKeys("", c, t, &out)
	sort.Strings(out)
	return out
}

func unknownKeys(prefix string, c Compound, t Table, out *[]string) {
	fields := c.Fields()
	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}
	for key, v := range t {
		path := joinPath(prefix, key)
		f, ok := byName[key]
		if !ok {
			*out = append(*out, path)
			continue
		}
		if f.Nested != nil {
			if sub, ok := asTable(v); ok {
				unknownKeys(path, f.Nested, sub, out)
			}
		}
	}
}
