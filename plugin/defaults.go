package plugin

// RegisterDefaults registers every built-in tag handler listed in spec.md §4.6 into reg.
// Callers construct their own Registry (or use DefaultRegistry) and call this once, explicitly,
// before parsing or rendering begins — there is no package-init magic, matching spec.md §4.6's
// "registration should happen before any parsing/rendering begins".
func RegisterDefaults(reg *Registry) error {
	handlers := []TagHandler{
		// positioning
		posHandler{},
		moveHandler{},
		originHandler{},

		// font
		fontNameHandler{},
		fontSizeHandler{},
		fontEncodingHandler{},
		spacingHandler{},

		// alignment / wrap
		alignHandler{},
		anHandler{},
		qHandler{},

		// basic toggles
		toggleHandler{name: "b", field: toggleBold},
		toggleHandler{name: "i", field: toggleItalic},
		toggleHandler{name: "u", field: toggleUnderline},
		toggleHandler{name: "s", field: toggleStrikeOut},

		// karaoke
		karaokeHandler{name: "k", style: KaraokeInstant},
		karaokeHandler{name: "K", style: KaraokeSweep},
		karaokeHandler{name: "kf", style: KaraokeSweep},
		karaokeHandler{name: "ko", style: KaraokeOutline},
		karaokeHandler{name: "kt", style: KaraokeInstant},

		// transforms
		transformHandler{},

		// fades
		fadHandler{},
		fadeHandler{},

		// rotation / origin
		rotationHandler{name: "fr", axis: axisZ},
		rotationHandler{name: "frz", axis: axisZ},
		rotationHandler{name: "frx", axis: axisX},
		rotationHandler{name: "fry", axis: axisY},

		// reset
		resetHandler{},

		// colors
		colorHandler{name: "c", slot: slotPrimary},
		colorHandler{name: "1c", slot: slotPrimary},
		colorHandler{name: "2c", slot: slotSecondary},
		colorHandler{name: "3c", slot: slotOutline},
		colorHandler{name: "4c", slot: slotBack},
		alphaHandler{name: "alpha"},
		alphaHandler{name: "1a", slots: []colorSlot{slotPrimary}},
		alphaHandler{name: "2a", slots: []colorSlot{slotSecondary}},
		alphaHandler{name: "3a", slots: []colorSlot{slotOutline}},
		alphaHandler{name: "4a", slots: []colorSlot{slotBack}},

		// scaling
		scaleHandler{name: "fscx", axis: scaleX},
		scaleHandler{name: "fscy", axis: scaleY},

		// borders/shadow/blur
		borderFieldHandler{name: "bord", field: fieldBord},
		borderFieldHandler{name: "shad", field: fieldShad},
		borderFieldHandler{name: "blur", field: fieldBlur},
		borderFieldHandler{name: "be", field: fieldBlur},

		// clipping
		clipHandler{inverse: false},
		clipHandler{inverse: true},

		// drawings
		drawingHandler{},
	}

	for _, h := range handlers {
		if err := reg.RegisterTagHandler(h); err != nil {
			return err
		}
	}
	return nil
}
