package terminal

// echoer is the part of a Surface the prompt readers need
type echoer interface {
	ReadKey() (Event, error)
	MoveCursor(x, y int)
	CursorPosition() (x, y int)
	Put(r rune)
	Show()
}

// readChar returns the first key carrying a rune and echoes it.
// Navigation keys carry no rune and are skipped.
func readChar(s echoer) (rune, error) {
	for {
		ev, err := s.ReadKey()
		if err != nil {
			return 0, err
		}
		if ev.Rune == 0 {
			continue
		}
		s.Put(ev.Rune)
		s.Show()
		return ev.Rune, nil
	}
}

// readLine collects typed characters until Enter with echo and Backspace editing
func readLine(s echoer) (string, error) {
	var text []rune

	for {
		ev, err := s.ReadKey()
		if err != nil {
			return "", err
		}

		switch ev.Key {
		case KeyEnter:
			_, y := s.CursorPosition()
			s.MoveCursor(0, y+1)
			s.Show()
			return string(text), nil

		case KeyBackspace:
			if len(text) == 0 {
				continue
			}
			text = text[:len(text)-1]

			x, y := s.CursorPosition()
			s.MoveCursor(x-1, y)
			s.Put(' ')
			s.MoveCursor(x-1, y)
			s.Show()

		case KeyRune, KeyPlus, KeyMinus:
			s.Put(ev.Rune)
			text = append(text, ev.Rune)
			s.Show()
		}
	}
}

