package models

// Team представляет команду из справочника. После загрузки каталога не изменяется.
type Team struct {
	ID            string  `json:"id"`   // stable short code, e.g. "MEX"
	Name          string  `json:"name"`
	Confederation string  `json:"confederation"` // UEFA, CONMEBOL, CONCACAF, AFC, CAF, OFC
	FlagKey       *string `json:"-"`             // object key in the flag asset store
	FlagURL       *string `json:"flag_url,omitempty"`
	// Note is set for placeholder slots (playoff winners) not yet resolved to a real team.
	Note *string `json:"qualification_note,omitempty"`
}
