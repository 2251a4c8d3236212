package subtitles

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Positions standard des champs d'une ligne Dialogue quand aucune ligne
// Format n'a été rencontrée :
// Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
const (
	defaultFieldCount = 10
	defaultStartIndex = 1
	defaultEndIndex   = 2
	defaultTextIndex  = 9
)

// Parse analyse un fichier ASS et retourne ses événements Dialogue, dans
// l'ordre du fichier. Le BOM UTF-8 est toléré (Aegisub en écrit un par
// défaut). Les événements Comment sont ignorés entièrement.
func Parse(data []byte) (*Document, error) {
	text := strings.TrimPrefix(string(data), "\uFEFF")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	doc := &Document{}
	inEvents := false

	// Indices des champs, éventuellement redéfinis par la ligne Format.
	fieldCount := defaultFieldCount
	startIdx := defaultStartIndex
	endIdx := defaultEndIndex
	textIdx := defaultTextIndex

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "["):
			inEvents = strings.EqualFold(trimmed, "[Events]")

		case !inEvents || trimmed == "":
			continue

		case strings.HasPrefix(trimmed, "Format:"):
			fields := splitFields(strings.TrimPrefix(trimmed, "Format:"))
			fieldCount = len(fields)
			for i, f := range fields {
				switch f {
				case "Start":
					startIdx = i
				case "End":
					endIdx = i
				case "Text":
					textIdx = i
				}
			}

		case strings.HasPrefix(trimmed, "Dialogue:"):
			ev, err := parseDialogue(strings.TrimPrefix(trimmed, "Dialogue:"), fieldCount, startIdx, endIdx, textIdx)
			if err != nil {
				return nil, fmt.Errorf("ligne Dialogue invalide : %w", err)
			}
			doc.Events = append(doc.Events, ev)

		default:
			// tout le reste (Comment:, Picture:, etc.) est ignoré
		}
	}

	if len(doc.Events) == 0 {
		return nil, ErrNoDialogue
	}
	return doc, nil
}

func splitFields(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func parseDialogue(s string, fieldCount, startIdx, endIdx, textIdx int) (Event, error) {
	// SplitN borné au nombre de champs : le texte peut contenir des virgules
	// et doit rester entier.
	parts := strings.SplitN(strings.TrimLeft(s, " "), ",", fieldCount)
	if len(parts) < fieldCount {
		return Event{}, fmt.Errorf("%d champs au lieu de %d : %q", len(parts), fieldCount, s)
	}

	start, err := parseTime(parts[startIdx])
	if err != nil {
		return Event{}, fmt.Errorf("temps de début : %w", err)
	}
	end, err := parseTime(parts[endIdx])
	if err != nil {
		return Event{}, fmt.Errorf("temps de fin : %w", err)
	}

	return Event{Start: start, End: end, Text: parts[textIdx]}, nil
}

// parseTime lit un temps ASS "h:mm:ss.cs". Le format officiel utilise des
// centisecondes (2 chiffres) mais on tolère 1 à 3 chiffres fractionnaires.
func parseTime(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	main, frac, ok := strings.Cut(s, ".")
	if !ok {
		return 0, fmt.Errorf("partie fractionnaire manquante dans %q", s)
	}

	hms := strings.Split(main, ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("format h:mm:ss attendu dans %q", s)
	}
	h, err := strconv.Atoi(hms[0])
	if err != nil {
		return 0, fmt.Errorf("heures invalides dans %q", s)
	}
	m, err := strconv.Atoi(hms[1])
	if err != nil {
		return 0, fmt.Errorf("minutes invalides dans %q", s)
	}
	sec, err := strconv.Atoi(hms[2])
	if err != nil {
		return 0, fmt.Errorf("secondes invalides dans %q", s)
	}

	var msMultiplier int
	switch len(frac) {
	case 1:
		msMultiplier = 100 // dixièmes
	case 2:
		msMultiplier = 10 // centisecondes (le cas normal)
	case 3:
		msMultiplier = 1 // millisecondes
	default:
		return 0, fmt.Errorf("partie fractionnaire invalide dans %q", s)
	}
	fracVal, err := strconv.Atoi(frac)
	if err != nil {
		return 0, fmt.Errorf("partie fractionnaire invalide dans %q", s)
	}

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(fracVal*msMultiplier)*time.Millisecond, nil
}
