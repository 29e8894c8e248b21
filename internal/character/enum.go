package character

type Class string

const (
	ClassWizard   Class = "WIZARD"
	ClassBrute    Class = "BRUTE"
	ClassAssassin Class = "ASSASSIN"
)
