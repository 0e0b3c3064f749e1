package patch

// PvP-split записи балансового апдейта от 5 февраля 2026.
// У скиллов с PvP-сплитом отдельная запись под собственным id,
// поэтому правки идут отдельным патчем от базовых записей 20260205.

func init() {
	Register(Patch{
		Name:         "20260205-pvp",
		Date:         "2026-02-05",
		Source:       "https://wiki.guildwars.com/wiki/Feedback:Game_updates/20260205",
		Summary:      "February 5, 2026 balance update, PvP split entries",
		Mechanical:   mech20260205pvp,
		Descriptions: desc20260205pvp,
	})
}

var mech20260205pvp = []MechanicalChange{
	{SkillID: 3289, Fields: []FieldChange{ // Fevered Dreams (PvP): energy 10 → 5, act 2 → 1
		{"energy", num("5")},
		{"activation", num("1")},
	}},
	{SkillID: 3398, Fields: []FieldChange{{"recharge", num("15")}}},  // Slippery Ground (PvP): 20 → 15
	{SkillID: 3018, Fields: []FieldChange{{"activation", num("3")}}}, // Restoration (PvP): 5 → 3
	{SkillID: 3273, Fields: []FieldChange{{"recharge", num("10")}}},  // Signet of Pious Restraint (PvP): 20 → 10
}

var desc20260205pvp = []DescriptionChange{
	// Smiter's Boon (PvP, 2895): 5 → 4 секунды
	{2895, "description", "For 5 seconds", "For 4 seconds"},
	{2895, "concise", "(5 seconds.)", "(4 seconds.)"},

	// Mantra of Signets (PvP, 3179): добавили "+3 armor per signet", как в PvE-версии
	{3179, "description",
		"For 10...40 seconds, whenever you use a signet, you gain 5...60 Health.",
		"For 10...40 seconds, you have +3 armor for each signet you have equipped. Whenever you use a signet you gain 5...60 Health."},
	{3179, "concise",
		"(10...40 seconds.) You gain 5...60 Health each time you use a signet.",
		"(10...40 seconds.) You have +3 armor for each signet. You gain 5...60 Health each time you use a signet."},

	// Shared Burden (PvP, 3186): nearby → area
	{3186, "description", "all nearby foes attack", "all foes in the area attack"},
	{3186, "concise", "foes near your target", "foes in the area of your target"},

	// Ether Renewal (PvP, 2860): 7 → 10 секунд
	{2860, "description", "For 7 seconds", "For 10 seconds"},
	{2860, "concise", "(7 seconds.)", "(10 seconds.)"},

	// Mind Freeze (PvP, 2803): условный урон 10...34...40 → 10...50...60
	{2803, "description", "additional 10...40 cold damage", "additional 10...60 cold damage"},
	{2803, "concise", "+10...40 cold damage", "+10...60 cold damage"},

	// У 3273, 3289, 3398 и 3018 текст описаний не меняется — только механика выше.
}
