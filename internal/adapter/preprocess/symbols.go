package preprocess

// Abbreviations whose trailing period is spoken the same without it.
var Abbreviations = []string{
	"dr", "jr", "mr",
	"mrs", "ms", "msgr",
	"prof", "sr", "st",
}

// SubPairs are literal word substitutions applied before tokenizing.
var SubPairs = [][2]string{
	{"Esq.", "Esquire"},
	{"M.", "Monsieur"},
}

// Punctuation classes the tokenizer splits on. The classes must stay
// disjoint, or splitting becomes order-dependent.
const (
	AllPunc          = "?!？！.,¡()[]¿…‥،;:—。，、：\n"
	ToneMarkChars    = "?!？！"
	PeriodCommaChars = ".,"
	ColonChars       = ":"
)
