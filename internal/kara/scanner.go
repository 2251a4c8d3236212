package kara

import "strconv"

// ScanTags extrait, de gauche à droite, les balises karaoké d'une ligne de
// texte ASS et retourne les TimingTag dans l'ordre exact d'apparition
// (les doublons sont conservés tels quels).
//
// Deux formes sont reconnues :
//   - forme A : `{\k<durée>}syllabe` — la durée (en centisecondes) suit un
//     marqueur k, kf, ko ou K, la balise est immédiatement fermée et la
//     suite de lettres qui suit devient la syllabe (éventuellement vide) ;
//   - forme B : `{\k<durée><contenu>}` — la balise contient du contenu
//     supplémentaire avant l'accolade fermante : marqueur de temps pur,
//     sans syllabe. Les caractères non numériques du champ durée sont
//     ignorés (tolère un formatage parasite).
//
// Tout bloc `{...}` qui ne correspond à aucune des deux formes (balise de
// style \pos, durée manquante...) produit un Diagnostic et le scan reprend
// après le bloc. Le texte nu entre les balises est ignoré silencieusement.
func ScanTags(text string) ([]TimingTag, []Diagnostic) {
	var tags []TimingTag
	var diags []Diagnostic

	i := 0
	for i < len(text) {
		if text[i] != '{' {
			i++
			continue
		}
		tag, next, ok := scanTagAt(text, i)
		if !ok {
			end := fragmentEnd(text, i)
			diags = append(diags, Diagnostic{Line: text, Fragment: text[i:end]})
			i = end
			continue
		}
		tags = append(tags, tag)
		i = next
	}
	return tags, diags
}

// scanTagAt tente de lire une balise karaoké à la position start (qui pointe
// sur '{'). Retourne la balise, l'index du premier caractère non consommé et
// true en cas de succès.
func scanTagAt(text string, start int) (TimingTag, int, bool) {
	var none TimingTag

	i := start + 1
	if i >= len(text) || text[i] != '\\' {
		return none, 0, false
	}
	i++

	// Marqueur : k, kf, ko ou K. Les variantes à deux lettres ne sont
	// retenues que si un chiffre suit, sinon `{\kf...}` sans durée serait
	// avalé par erreur.
	if i >= len(text) {
		return none, 0, false
	}
	switch text[i] {
	case 'K':
		i++
	case 'k':
		i++
		if i < len(text) && (text[i] == 'f' || text[i] == 'o') && i+1 < len(text) && isDigit(text[i+1]) {
			i++
		}
	default:
		return none, 0, false
	}

	// Le champ durée doit commencer par au moins un chiffre.
	digitsStart := i
	for i < len(text) && isDigit(text[i]) {
		i++
	}
	if i == digitsStart {
		return none, 0, false
	}
	digits := text[digitsStart:i]

	// Balise fermée juste après les chiffres : forme A, la suite de lettres
	// devient la syllabe.
	if i < len(text) && text[i] == '}' {
		i++
		soundStart := i
		for i < len(text) && isLetter(text[i]) {
			i++
		}
		duration, err := strconv.Atoi(digits)
		if err != nil {
			return none, 0, false
		}
		return TimingTag{DurationCS: duration, Sound: text[soundStart:i]}, i, true
	}

	// Forme B : le champ durée s'étend jusqu'au prochain '\' ou '}', les
	// caractères non numériques sont ignorés ; tout ce qui suit jusqu'à
	// l'accolade fermante est du contenu de balise sans intérêt ici.
	raw := []byte(digits)
	for i < len(text) && text[i] != '\\' && text[i] != '}' {
		if isDigit(text[i]) {
			raw = append(raw, text[i])
		}
		i++
	}
	for i < len(text) && text[i] != '}' {
		i++
	}
	if i >= len(text) {
		// accolade fermante absente : balise tronquée
		return none, 0, false
	}
	i++

	duration, err := strconv.Atoi(string(raw))
	if err != nil {
		return none, 0, false
	}
	return TimingTag{DurationCS: duration}, i, true
}

// fragmentEnd retourne l'index situé juste après le bloc `{...}` commençant
// à start (ou la fin du texte si l'accolade fermante manque).
func fragmentEnd(text string, start int) int {
	for i := start + 1; i < len(text); i++ {
		if text[i] == '}' {
			return i + 1
		}
	}
	return len(text)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
