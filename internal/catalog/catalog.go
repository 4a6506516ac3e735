package catalog

// Book is a purchasable catalog entry. Everything except ID, Title, Author
// and Price is display metadata and is ignored by the cart/checkout core.
type Book struct {
	ID                  string  `json:"id" yaml:"id"`
	Title               string  `json:"title" yaml:"title"`
	Author              string  `json:"author" yaml:"author"`
	Description         string  `json:"description" yaml:"description"`
	ExtendedDescription string  `json:"extendedDescription,omitempty" yaml:"extendedDescription"`
	DescriptionHTML     string  `json:"descriptionHtml,omitempty" yaml:"-"`
	Price               float64 `json:"price" yaml:"price"`
	Image               string  `json:"image" yaml:"image"`
	Genre               string  `json:"genre,omitempty" yaml:"genre"`
	Rating              float64 `json:"rating,omitempty" yaml:"rating"`
	IsSpecialEdition    bool    `json:"isSpecialEdition" yaml:"isSpecialEdition"`
	SpecialEditionText  string  `json:"specialEditionText,omitempty" yaml:"specialEditionText"`
}
