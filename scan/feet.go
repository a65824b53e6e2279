package scan

// findFeet looks up scan's foot-annotated form in the scanner's
// precomputed table (built once at construction by meter.GenPossibleFeet).
// A scan with no entry — most meters never vary their final syllable — is
// returned unchanged.
func (s *Scanner) findFeet(scan string) string {
	if annotated, ok := s.feetTable[scan]; ok {
		return annotated
	}
	return scan
}
