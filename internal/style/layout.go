package style

// CalcMaxChars estimates how many characters fit on a subtitle line for a
// given canvas and font size. A conservative geometric estimate (usable
// width after margins and a safety factor, divided by an average glyph
// width) is capped by a per-canvas table so pathological font metrics never
// widen the limit. The result is never larger than the raw estimate.
func CalcMaxChars(width, height, fontSize int, allCaps bool) int {
	const (
		marginL      = 100
		marginR      = 100
		safetyFactor = 0.75
	)

	vertical := height > width

	var usable float64
	var glyphWidth float64
	if vertical {
		usable = float64(width)*0.60 - (marginL + marginR)
		if allCaps {
			glyphWidth = float64(fontSize) * 0.70
		} else {
			glyphWidth = float64(fontSize) * 0.58
		}
	} else {
		usable = float64(width)*0.75 - (marginL + marginR)
		if allCaps {
			glyphWidth = float64(fontSize) * 0.65
		} else {
			glyphWidth = float64(fontSize) * 0.55
		}
	}

	usable *= safetyFactor
	calculated := int(usable / glyphWidth)

	var tableMax int
	if vertical {
		switch {
		case width <= 720:
			tableMax = pick(fontSize >= 50, 12, 15)
		case width <= 1080:
			tableMax = pick(fontSize >= 50, 14, 18)
		default:
			tableMax = pick(fontSize >= 50, 18, 22)
		}
	} else {
		switch {
		case width <= 1280:
			tableMax = pick(fontSize >= 50, 28, 32)
		case width <= 1920:
			tableMax = pick(fontSize >= 50, 32, 38)
		default:
			tableMax = pick(fontSize >= 50, 38, 45)
		}
	}

	if calculated < tableMax {
		return calculated
	}
	return tableMax
}

func pick(cond bool, a, b int) int {
	if cond {
		return a
	}
	return b
}
