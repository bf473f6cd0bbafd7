package catalog

import "github.com/Dosada05/prediction-game/models"

func strPtr(s string) *string { return &s }

func team(id, name, confed string) models.Team {
	return models.Team{ID: id, Name: name, Confederation: confed, FlagKey: strPtr("flags/" + id + ".png")}
}

// placeholder marks a slot whose real team is decided in the March playoffs.
func placeholder(id, name, confed, note string) models.Team {
	t := team(id, name, confed)
	t.Note = strPtr(note)
	return t
}

// seedTeams - 48 участников финального турнира: 42 квалифицировавшихся
// напрямую и 6 слотов, закрывающихся мартовскими стыками.
var seedTeams = []models.Team{
	// CONCACAF (hosts + qualifiers)
	team("MEX", "Mexico", "CONCACAF"),
	team("CAN", "Canada", "CONCACAF"),
	team("USA", "United States", "CONCACAF"),
	team("PAN", "Panama", "CONCACAF"),
	team("CUW", "Curaçao", "CONCACAF"),
	team("HAI", "Haiti", "CONCACAF"),

	// CONMEBOL
	team("ARG", "Argentina", "CONMEBOL"),
	team("BRA", "Brazil", "CONMEBOL"),
	team("URU", "Uruguay", "CONMEBOL"),
	team("COL", "Colombia", "CONMEBOL"),
	team("ECU", "Ecuador", "CONMEBOL"),
	team("PAR", "Paraguay", "CONMEBOL"),

	// UEFA
	team("FRA", "France", "UEFA"),
	team("ENG", "England", "UEFA"),
	team("ESP", "Spain", "UEFA"),
	team("GER", "Germany", "UEFA"),
	team("POR", "Portugal", "UEFA"),
	team("NED", "Netherlands", "UEFA"),
	team("BEL", "Belgium", "UEFA"),
	team("CRO", "Croatia", "UEFA"),
	team("SUI", "Switzerland", "UEFA"),
	team("AUT", "Austria", "UEFA"),
	team("SCO", "Scotland", "UEFA"),
	team("NOR", "Norway", "UEFA"),

	// AFC
	team("JPN", "Japan", "AFC"),
	team("KOR", "South Korea", "AFC"),
	team("IRN", "Iran", "AFC"),
	team("AUS", "Australia", "AFC"),
	team("KSA", "Saudi Arabia", "AFC"),
	team("QAT", "Qatar", "AFC"),
	team("UZB", "Uzbekistan", "AFC"),
	team("JOR", "Jordan", "AFC"),

	// CAF
	team("MAR", "Morocco", "CAF"),
	team("SEN", "Senegal", "CAF"),
	team("TUN", "Tunisia", "CAF"),
	team("ALG", "Algeria", "CAF"),
	team("EGY", "Egypt", "CAF"),
	team("CIV", "Ivory Coast", "CAF"),
	team("GHA", "Ghana", "CAF"),
	team("RSA", "South Africa", "CAF"),
	team("CPV", "Cape Verde", "CAF"),

	// OFC
	team("NZL", "New Zealand", "OFC"),

	// Playoff placeholders
	placeholder("EPA", "European Playoff A", "UEFA", "Winner of the UEFA playoff path A"),
	placeholder("EPB", "European Playoff B", "UEFA", "Winner of the UEFA playoff path B"),
	placeholder("EPC", "European Playoff C", "UEFA", "Winner of the UEFA playoff path C"),
	placeholder("EPD", "European Playoff D", "UEFA", "Winner of the UEFA playoff path D"),
	placeholder("ICA", "Intercontinental Playoff 1", "FIFA", "Winner of intercontinental playoff tournament 1"),
	placeholder("ICB", "Intercontinental Playoff 2", "FIFA", "Winner of intercontinental playoff tournament 2"),
}

// seedGroups - группы A-L в порядке жеребьёвки; хозяева закреплены
// за группами A, B и D.
var seedGroups = []models.Group{
	{ID: models.GroupA, TeamIDs: [4]string{"MEX", "KOR", "NOR", "ICA"}},
	{ID: models.GroupB, TeamIDs: [4]string{"CAN", "CRO", "QAT", "EPA"}},
	{ID: models.GroupC, TeamIDs: [4]string{"ARG", "SEN", "SCO", "NZL"}},
	{ID: models.GroupD, TeamIDs: [4]string{"USA", "JPN", "ALG", "EPB"}},
	{ID: models.GroupE, TeamIDs: [4]string{"BRA", "AUT", "KSA", "JOR"}},
	{ID: models.GroupF, TeamIDs: [4]string{"FRA", "MAR", "UZB", "HAI"}},
	{ID: models.GroupG, TeamIDs: [4]string{"ENG", "ECU", "EGY", "CPV"}},
	{ID: models.GroupH, TeamIDs: [4]string{"ESP", "URU", "CIV", "EPC"}},
	{ID: models.GroupI, TeamIDs: [4]string{"GER", "COL", "PAN", "RSA"}},
	{ID: models.GroupJ, TeamIDs: [4]string{"POR", "IRN", "GHA", "CUW"}},
	{ID: models.GroupK, TeamIDs: [4]string{"NED", "AUS", "TUN", "EPD"}},
	{ID: models.GroupL, TeamIDs: [4]string{"BEL", "SUI", "PAR", "ICB"}},
}
