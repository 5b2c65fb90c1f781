package numwords

const groupBase = 1000

// Segment splits a non-negative magnitude into its non-zero three digit
// groups, most significant first. Zero yields a single {0, 0} group so the
// caller can render the zero word.
func Segment(magnitude int64) ([]ScaleGroup, error) {
	if magnitude < 0 {
		return nil, &ConversionError{Kind: KindInvalidInput, Value: magnitude, Reason: "negative magnitude"}
	}
	if magnitude > MaxMagnitude {
		return nil, valueTooLarge(magnitude)
	}
	if magnitude == 0 {
		return []ScaleGroup{{Value: 0, Scale: 0}}, nil
	}

	var groups []ScaleGroup
	for scale := 0; magnitude > 0; scale++ {
		if g := int(magnitude % groupBase); g != 0 {
			groups = append(groups, ScaleGroup{Value: g, Scale: scale})
		}
		magnitude /= groupBase
	}

	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	return groups, nil
}
