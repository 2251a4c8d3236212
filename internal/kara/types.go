package kara

import "fmt"

// TimingTag représente une annotation karaoké extraite d'une ligne ASS :
// une durée en centisecondes et, éventuellement, la syllabe à chanter.
// Sound vide = marqueur de temps pur (pause instrumentale) : il avance le
// curseur de beats sans produire de note.
type TimingTag struct {
	DurationCS int    // durée en centièmes de seconde (toujours >= 0)
	Sound      string // syllabe associée, vide pour un marqueur pur
}

// Diagnostic signale un fragment inattendu rencontré pendant le scan d'une
// ligne. Non fatal : le fragment est ignoré et le traitement continue.
// On retourne une liste structurée plutôt que d'écrire sur la console, pour
// que l'appelant (CLI, tests) puisse inspecter ou filtrer les avertissements.
type Diagnostic struct {
	Line     string // texte brut de la ligne concernée
	Fragment string // le fragment qui n'a pas pu être interprété
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("fragment inattendu %q dans la ligne %q", d.Fragment, d.Line)
}
