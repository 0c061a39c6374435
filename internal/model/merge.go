package model

// Merge deep-unions maps into a new CoverageMap. When several maps define the
// same (path, line) the value from the last map wins. Inputs are not
// modified and the result shares no memory with them. Merging no maps yields
// an empty, non-nil map.
func Merge(maps ...CoverageMap) CoverageMap {
	result := make(CoverageMap)
	for _, m := range maps {
		for path, fc := range m {
			if fc == nil {
				continue
			}
			dst := result.File(path)
			for n, l := range fc.LineMap {
				dst.LineMap[n] = l
			}
		}
	}
	return result
}
