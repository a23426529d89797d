package domain

// BuildStationNumbers materialises the numbering slots of a station against
// its owning line. A slot is emitted iff its raw number is non-empty. A slot
// with a symbol renders as "<symbol>-<number>", a symbol-less slot as the
// bare number. A slot with no colour of its own inherits the line colour.
func BuildStationNumbers(s *Station, l *Line) []*StationNumber {
	if s == nil || l == nil {
		return nil
	}

	numbers := make([]*StationNumber, 0, len(s.RawNumbers))
	for i, raw := range s.RawNumbers {
		if raw == "" {
			continue
		}

		slot := l.SymbolSlots[i]
		color := slot.Color
		if color == "" {
			color = l.Color
		}

		number := raw
		if slot.Symbol != "" {
			number = slot.Symbol + "-" + raw
		}

		numbers = append(numbers, &StationNumber{
			LineSymbol:      slot.Symbol,
			LineSymbolColor: color,
			LineSymbolShape: slot.Shape,
			StationNumber:   number,
		})
	}

	return numbers
}

// BuildLineSymbols projects the first three symbol slots of a line. A slot
// is emitted iff both its symbol and shape are non-empty. Slot 1 falls back
// to the line colour when it has none; slots 2 and 3 stay empty.
func BuildLineSymbols(l *Line) []*LineSymbol {
	if l == nil {
		return nil
	}

	symbols := make([]*LineSymbol, 0, 3)
	for i := 0; i < 3; i++ {
		slot := l.SymbolSlots[i]
		if slot.Symbol == "" || slot.Shape == "" {
			continue
		}

		color := slot.Color
		if color == "" && i == 0 {
			color = l.Color
		}

		symbols = append(symbols, &LineSymbol{
			Symbol: slot.Symbol,
			Color:  color,
			Shape:  slot.Shape,
		})
	}

	return symbols
}
