package patch

// Балансовый апдейт от 5 февраля 2026 — базовые (PvE) записи.
// PvP-split записи того же апдейта лежат в отдельном патче 20260205-pvp.
//
// Формат описаний: "X...Y", где X — значение на рангах 0, Y — на 15.
// Патчноуты пишут "X...Y...Z" (ранги 0/12/15), поэтому в тексте описания
// меняется пара "old_X...old_Z" → "new_X...new_Z".

func init() {
	Register(Patch{
		Name:         "20260205",
		Date:         "2026-02-05",
		Source:       "https://wiki.guildwars.com/wiki/Feedback:Game_updates/20260205",
		Summary:      "February 5, 2026 balance update, baseline entries",
		Mechanical:   mech20260205,
		Descriptions: desc20260205,
	})
}

var mech20260205 = []MechanicalChange{
	// Warrior
	{SkillID: 1406, Fields: []FieldChange{{"recharge", num("15")}}}, // Headbutt: 20 → 15

	// Ranger
	{SkillID: 1467, Fields: []FieldChange{{"recharge", num("3")}}},  // Arcing Shot: 6 → 3
	{SkillID: 908, Fields: []FieldChange{{"energy", num("5")}}},     // Marauder's Shot: 10 → 5
	{SkillID: 430, Fields: []FieldChange{{"activation", num("1")}}}, // Marksman's Wager: 2 → 1

	// Природные ритуалы: activation 5 → 3 у всех
	{SkillID: 947, Fields: []FieldChange{{"activation", num("3")}}},  // Brambles
	{SkillID: 466, Fields: []FieldChange{{"activation", num("3")}}},  // Conflagration
	{SkillID: 464, Fields: []FieldChange{{"activation", num("3")}}},  // Edge of Extinction
	{SkillID: 467, Fields: []FieldChange{{"activation", num("3")}}},  // Fertile Season
	{SkillID: 471, Fields: []FieldChange{{"activation", num("3")}}},  // Frozen Soil
	{SkillID: 477, Fields: []FieldChange{{"activation", num("3")}}},  // Muddy Terrain
	{SkillID: 870, Fields: []FieldChange{{"activation", num("3")}}},  // Pestilence
	{SkillID: 470, Fields: []FieldChange{{"activation", num("3")}}},  // Predatory Season
	{SkillID: 1473, Fields: []FieldChange{{"activation", num("3")}}}, // Quicksand
	{SkillID: 1725, Fields: []FieldChange{{"activation", num("3")}}}, // Roaring Winds
	{SkillID: 468, Fields: []FieldChange{{"activation", num("3")}}},  // Symbiosis
	{SkillID: 1472, Fields: []FieldChange{{"activation", num("3")}}}, // Toxicity
	{SkillID: 1213, Fields: []FieldChange{{"activation", num("3")}}}, // Tranquility

	// Monk
	{SkillID: 265, Fields: []FieldChange{{"recharge", num("20")}}}, // Amity: 45 → 20
	{SkillID: 847, Fields: []FieldChange{{"recharge", num("6")}}},  // Boon Signet: 8 → 6
	{SkillID: 1692, Fields: []FieldChange{{"energy", num("5")}}},   // Divert Hexes: 10 → 5
	{SkillID: 269, Fields: []FieldChange{ // Mark of Protection: act 1 → 0.25, rech 45 → 15
		{"activation", num("0.25")},
		{"recharge", num("15")},
	}},
	{SkillID: 264, Fields: []FieldChange{{"recharge", num("15")}}}, // Pacifism: 30 → 15
	{SkillID: 253, Fields: []FieldChange{{"energy", num("5")}}},    // Scourge Sacrifice: 10 → 5

	// Mesmer
	{SkillID: 2137, Fields: []FieldChange{{"activation", num("1")}}}, // Confusing Images: 2 → 1
	{SkillID: 1061, Fields: []FieldChange{{"activation", num("1")}}}, // Feedback: 2 → 1
	{SkillID: 55, Fields: []FieldChange{ // Fevered Dreams: energy 10 → 5, act 2 → 1
		{"energy", num("5")},
		{"activation", num("1")},
	}},
	{SkillID: 1348, Fields: []FieldChange{ // Hex Eater Vortex: energy 10 → 5, act 1 → 0.25
		{"energy", num("5")},
		{"activation", num("0.25")},
	}},
	{SkillID: 1334, Fields: []FieldChange{{"activation", num("0.25")}}}, // Hypochondria: 1 → 0.25
	{SkillID: 35, Fields: []FieldChange{{"energy", num("10")}}},         // Ignorance: 15 → 10
	{SkillID: 1338, Fields: []FieldChange{{"energy", num("5")}}},        // Persistence of Memory: 10 → 5

	// Necromancer
	{SkillID: 1355, Fields: []FieldChange{{"recharge", num("10")}}}, // Jagged Bones: 15 → 10
	{SkillID: 763, Fields: []FieldChange{{"energy", num("5")}}},     // Jaundiced Gaze: 10 → 5
	{SkillID: 1358, Fields: []FieldChange{ // Ulcerous Lungs: energy 15 → 10, act 2 → 1
		{"energy", num("10")},
		{"activation", num("1")},
	}},

	// Elementalist
	{SkillID: 2193, Fields: []FieldChange{{"energy", num("5")}}}, // Energy Blast: 10 → 5
	{SkillID: 175, Fields: []FieldChange{{"energy", num("10")}}}, // Ward Against Elements: 15 → 10
	{SkillID: 2001, Fields: []FieldChange{{"energy", num("5")}}}, // Ward of Weakness: 10 → 5

	// Assassin
	{SkillID: 802, Fields: []FieldChange{{"energy", num("5")}}},      // Expose Defenses: 10 → 5
	{SkillID: 1654, Fields: []FieldChange{{"energy", num("5")}}},     // Shadow Meld: 10 → 5
	{SkillID: 876, Fields: []FieldChange{{"recharge", num("15")}}},   // Signet of Shadows: 30 → 15
	{SkillID: 1648, Fields: []FieldChange{{"activation", num("1")}}}, // Signet of Twilight: 2 → 1

	// Ritualist
	{SkillID: 914, Fields: []FieldChange{{"activation", num("0.25")}}}, // Consume Soul: 1 → 0.25
	{SkillID: 980, Fields: []FieldChange{{"energy", num("5")}}},        // Feast of Souls: 10 → 5
	{SkillID: 2072, Fields: []FieldChange{{"energy", num("5")}}},       // Pure Was Li Ming: 10 → 5
	{SkillID: 794, Fields: []FieldChange{{"recharge", num("15")}}},     // Wailing Weapon: 25 → 15
	{SkillID: 1268, Fields: []FieldChange{{"activation", num("1")}}},   // Weapon of Quickening: 2 → 1
	{SkillID: 1737, Fields: []FieldChange{{"energy", num("5")}}},       // Wielder's Zeal: 10 → 5

	// Dervish
	{SkillID: 1755, Fields: []FieldChange{{"energy", num("5")}}},     // Mystic Corruption: 10 → 5
	{SkillID: 1525, Fields: []FieldChange{{"activation", num("1")}}}, // Natural Healing: 2 → 1
	{SkillID: 2014, Fields: []FieldChange{{"recharge", num("10")}}},  // Signet of Pious Restraint: 20 → 10
	{SkillID: 1545, Fields: []FieldChange{{"adrenaline", num("5")}}}, // Test of Faith: 7 → 5
	{SkillID: 1533, Fields: []FieldChange{{"energy", num("5")}}},     // Winds of Disenchantment: 10 → 5

	// Paragon
	{SkillID: 1779, Fields: []FieldChange{{"recharge", num("10")}}},  // "Make Your Time!": 30 → 10
	{SkillID: 1568, Fields: []FieldChange{{"adrenaline", num("2")}}}, // Anthem of Guidance: 4 → 2
	{SkillID: 1569, Fields: []FieldChange{{"adrenaline", num("3")}}}, // Energizing Chorus: 4 → 3
	{SkillID: 1579, Fields: []FieldChange{ // Purifying Finale: act 1 → 0.25, rech 10 → 5
		{"activation", num("0.25")},
		{"recharge", num("5")},
	}},
	{SkillID: 1560, Fields: []FieldChange{{"energy", num("15")}}},    // Song of Power: 25 → 15
	{SkillID: 1570, Fields: []FieldChange{{"adrenaline", num("3")}}}, // Song of Purification: 5 → 3
}

var desc20260205 = []DescriptionChange{
	// ── Warrior ──

	// "I Meant to Do That!" (2067): адреналин 1...4...5 → 1...5...6
	{2067, "description", "gain 1...5 strikes", "gain 1...6 strikes"},
	{2067, "concise", "gain 1...5 strikes", "gain 1...6 strikes"},

	// "You Will Die!" (1141): порог здоровья 50% → 90%
	{1141, "description", "below 50% Health", "below 90% Health"},
	{1141, "concise", "under 50% Health", "under 90% Health"},

	// Charging Strike (1405): бонусный урон +10...34...40 → +10...74...90
	{1405, "description", "+10...40 damage", "+10...90 damage"},
	{1405, "concise", "+10...40 damage", "+10...90 damage"},

	// Headbutt (1406): Daze 5...17...20 → фиксированные 5 секунд
	{1406, "description", "Dazed for 5...20 seconds", "Dazed for 5 seconds"},
	{1406, "concise", "Dazed (5...20 seconds)", "Dazed (5 seconds)"},

	// Rage of the Ntouka (1408): длительность 10 → 8, реюз адреналиновых 5 → 3
	{1408, "description",
		"For 10 seconds, whenever you use an adrenal skill, that skill recharges for 5 seconds",
		"For 8 seconds, whenever you use an adrenal skill, that skill recharges for 3 seconds"},
	{1408, "concise",
		"For 10 seconds, adrenal skills have a 5 second recharge",
		"For 8 seconds, adrenal skills have a 3 second recharge"},

	// ── Ranger ──

	// Arcing Shot (1467): урон +10...22...25 → +10...30...35
	{1467, "description", "+10...25 damage", "+10...35 damage"},
	{1467, "concise", "+10...25 damage", "+10...35 damage"},

	// Marauder's Shot (908): урон +10...30...35 → +25...49...55, disable 10 → 5.
	// В concise две последовательные замены — порядок важен.
	{908, "description",
		"+10...35 damage and all your non-attack skills are disabled for 10 seconds",
		"+25...55 damage and all your non-attack skills are disabled for 5 seconds"},
	{908, "concise", "Deals +10...35 damage.", "Deals +25...55 damage."},
	{908, "concise", "disabled (10 seconds)", "disabled (5 seconds)"},

	// Practiced Stance (449): длительность препарейшенов 30...126...150% → 30...246...300%
	{449, "description", "last 30...150% longer", "last 30...300% longer"},
	{449, "concise", "last 30...150% longer", "last 30...300% longer"},

	// Splinter Shot (852): adjacent → area
	{852, "description", "foes adjacent to your target", "foes in the area of your target"},
	{852, "concise", "to adjacent foes", "to foes in the area"},

	// ── Природные ритуалы ──

	// Brambles (947): 30...126...150 → 30...198...240
	{947, "description", "dies after 30...150 seconds", "dies after 30...240 seconds"},
	{947, "concise", "30...150 second lifespan", "30...240 second lifespan"},

	// Conflagration (466): 30...126...150 → 30...198...240
	{466, "description", "dies after 30...150 seconds", "dies after 30...240 seconds"},
	{466, "concise", "30...150 second lifespan", "30...240 second lifespan"},

	// Edge of Extinction (464): 30...126...150 → 30...198...240
	{464, "description", "dies after 30...150 seconds", "dies after 30...240 seconds"},
	{464, "concise", "30...150 second lifespan", "30...240 second lifespan"},

	// Equinox (1212): 30...126...150 → 30...198...240
	{1212, "description", "dies after 30...150 seconds", "dies after 30...240 seconds"},
	{1212, "concise", "30...150 second lifespan", "30...240 second lifespan"},

	// Famine (997): lifespan 30...78...90 → 30...150...180, урон 10...30...35 → 20...60...70
	{997, "description", "takes 10...35 damage", "takes 20...70 damage"},
	{997, "description", "dies after 30...90 seconds", "dies after 30...180 seconds"},
	{997, "concise", "Deals 10...35 damage", "Deals 20...70 damage"},
	{997, "concise", "30...90 lifespan", "30...180 lifespan"},

	// Fertile Season (467): 15...39...45 → 15...75...90
	{467, "description", "dies after 15...45 seconds", "dies after 15...90 seconds"},
	{467, "concise", "15...45 second lifespan", "15...90 second lifespan"},

	// Frozen Soil (471): 30...78...90 → 30...150...180
	{471, "description", "dies after 30...90 seconds", "dies after 30...180 seconds"},
	{471, "concise", "30...90 second lifespan", "30...180 second lifespan"},

	// Greater Conflagration (465): 30...126...150 → 30...198...240
	{465, "description", "dies after 30...150 seconds", "dies after 30...240 seconds"},
	{465, "concise", "30...150 second lifespan", "30...240 second lifespan"},

	// Infuriating Heat (1730): 30...54...60 → 30...102...120
	{1730, "description", "dies after 30...60 seconds", "dies after 30...120 seconds"},
	{1730, "concise", "30...60 second lifespan", "30...120 second lifespan"},

	// Lacerate (961): 30...126...150 → 30...198...240
	{961, "description", "dies after 30...150 seconds", "dies after 30...240 seconds"},
	{961, "concise", "30...150 second lifespan", "30...240 second lifespan"},

	// Muddy Terrain (477): 30...78...90 → 30...150...180
	{477, "description", "dies after 30...90 seconds", "dies after 30...180 seconds"},
	{477, "concise", "30...90 second lifespan", "30...180 second lifespan"},

	// Pestilence (870): 30...78...90 → 30...150...180
	{870, "description", "dies after 30...90 seconds", "dies after 30...180 seconds"},
	{870, "concise", "30...90 second lifespan", "30...180 second lifespan"},

	// Predatory Season (470): 30...126...150 → 30...198...240
	{470, "description", "dies after 30...150 seconds", "dies after 30...240 seconds"},
	{470, "concise", "30...150 second lifespan", "30...240 second lifespan"},

	// Quicksand (1473): 30...78...90 → 30...150...180
	{1473, "description", "dies after 30...90 seconds", "dies after 30...180 seconds"},
	{1473, "concise", "30...90 second lifespan", "30...180 second lifespan"},

	// Roaring Winds (1725): 30...54...60 → 30...150...180
	{1725, "description", "dies after 30...60 seconds", "dies after 30...180 seconds"},
	{1725, "concise", "30...60 second lifespan", "30...180 second lifespan"},

	// Symbiosis (468): 30...126...150 → 30...198...240
	{468, "description", "dies after 30...150 seconds", "dies after 30...240 seconds"},
	{468, "concise", "30...150 second lifespan", "30...240 second lifespan"},

	// Toxicity (1472): 30...78...90 → 30...150...180
	{1472, "description", "dies after 30...90 seconds", "dies after 30...180 seconds"},
	{1472, "concise", "30...90 second lifespan", "30...180 second lifespan"},

	// Tranquility (1213): 15...54...60 → 30...102...120
	{1213, "description", "dies after 15...60 seconds", "dies after 30...120 seconds"},
	{1213, "concise", "15...60 second lifespan", "30...120 second lifespan"},

	// Winter (462): 30...126...150 → 30...198...240
	{462, "description", "dies after 30...150 seconds", "dies after 30...240 seconds"},
	{462, "concise", "30...150 second lifespan", "30...240 second lifespan"},

	// ── Monk ──

	// Amity (265): 8...18...20 → 4...10...12
	{265, "description", "For 8...20 seconds", "For 4...12 seconds"},
	{265, "concise", "(8...20 seconds.)", "(4...12 seconds.)"},

	// Boon Signet (847): бонусное лечение 20...68...80 → 20...84...100.
	// В исходном тексте есть тег <sic/> — он часть данных.
	{847, "description",
		"20...80 Health. Your next Healing or Protection Prayer <sic/> spell that targets an ally heals for an additional 20...80 Health",
		"20...100 Health. Your next Healing or Protection Prayer <sic/> spell that targets an ally heals for an additional 20...100 Health"},
	{847, "concise",
		"Heals for 20...80. Your next Healing or Protection Prayer <sic/> spell that targets an ally heals for +20...80 Health",
		"Heals for 20...100. Your next Healing or Protection Prayer <sic/> spell that targets an ally heals for +20...100 Health"},

	// Pacifism (264): 8...18...20 → 4...7...8
	{264, "description", "For 8...20 seconds", "For 4...8 seconds"},
	{264, "concise", "(8...20 seconds.)", "(4...8 seconds.)"},

	// Smiter's Boon (2005): изменение только PvP-split версии, базовую
	// запись не трогаем — см. патч 20260205-pvp (id 2895).

	// Word of Censure (1129): урон 15...63...75 → 30...110...130, порог 33% → 50%
	{1129, "description",
		"takes 15...75 holy damage. If your target was below 33% Health",
		"takes 30...130 holy damage. If your target was below 50% Health"},
	{1129, "concise", "Deals 15...75 holy damage.", "Deals 30...130 holy damage."},
	{1129, "concise", "below 33% Health", "below 50% Health"},

	// ── Mesmer ──

	// Hex Eater Vortex (1348): near → in the area
	{1348, "description", "foes near that ally", "foes in the area of that ally"},
	{1348, "concise", "from foes near this ally", "from foes in the area of this ally"},

	// Shared Burden (900): nearby → in the area
	{900, "description", "all nearby foes attack", "all foes in the area attack"},
	{900, "concise", "Also hexes foes near your target", "Also hexes foes in the area of your target"},

	// Mantra of Signets (18): PvP-версию подтянули к PvE, базовый текст
	// уже содержит "+3 armor per equipped signet" — правка не нужна.

	// ── Necromancer ──

	// Jagged Bones (1355): 30 → 60 секунд
	{1355, "description", "For 30 seconds", "For 60 seconds"},
	{1355, "concise", "(30 seconds.)", "(60 seconds.)"},

	// Jaundiced Gaze (763): 1...12...15 → 1...16...20
	{763, "description", "the next 1...15 seconds", "the next 1...20 seconds"},
	{763, "concise", "(1...15 seconds)", "(1...20 seconds)"},

	// Order of Apostasy (863): потеря здоровья 25...17...15% → 10...4...3%
	{863, "description", "lose 25...15% maximum Health", "lose 10...3% maximum Health"},
	{863, "concise", "lose 25...15% maximum Health", "lose 10...3% maximum Health"},

	// Spinal Shivers (124): триггерная потеря энергии 10...6...5 → 8...4...3
	{124, "description", "you lose 10...5 Energy", "you lose 8...3 Energy"},
	{124, "concise", "lose 10...5 Energy", "lose 8...3 Energy"},

	// ── Elementalist ──

	// Ether Renewal (181) и Mind Freeze (209): только PvP-split, см. 20260205-pvp.

	// Magnetic Aura (168): 1...4...5 → 1...7...8
	{168, "description", "For 1...5 seconds", "For 1...8 seconds"},
	{168, "concise", "(1...5 seconds.)", "(1...8 seconds.)"},

	// Swirling Aura (233): "5 seconds" → "3...7 seconds"
	{233, "description", "For 5 seconds", "For 3...7 seconds"},
	{233, "concise", "(5 seconds.)", "(3...7 seconds.)"},

	// Teinai's Prison (1097): 1...5...6 → 1...7...8
	{1097, "description", "For 1...6 seconds", "For 1...8 seconds"},
	{1097, "concise", "(1...6 seconds.)", "(1...8 seconds.)"},

	// ── Assassin ──

	// Dark Apostasy (1029): триггерная потеря энергии 10...5...4 → 10...4...3
	{1029, "description", "lose 10...4 Energy", "lose 10...3 Energy"},
	{1029, "concise", "lose 10...4 Energy", "lose 10...3 Energy"},

	// Hidden Caltrops (1642): disable 10 → 3 секунды
	{1642, "description", "skills are disabled for 10 seconds", "skills are disabled for 3 seconds"},
	{1642, "concise", "skills are disabled (10 seconds.)", "skills are disabled (3 seconds.)"},

	// Mark of Death (785): ослабление лечения 33% → 50%
	{785, "description", "gains 33% less benefit from healing", "gains 50% less benefit from healing"},
	{785, "concise", "receives 33% less from healing", "receives 50% less from healing"},

	// Sadist's Signet (1991): 10...34...40 → 10...38...45
	{1991, "description", "gain 10...40 Health", "gain 10...45 Health"},
	{1991, "concise", "gain 10...40 Health", "gain 10...45 Health"},

	// Shroud of Silence (801): 1...3...3 → 1...5...6
	{801, "description", "For 1...3 seconds", "For 1...6 seconds"},
	{801, "concise", "(1...3 seconds.)", "(1...6 seconds.)"},

	// Siphon Strength (827): шанс крита +33% → +50%
	{827, "description",
		"additional 33% chance of being a critical hit",
		"additional 50% chance of being a critical hit"},
	{827, "concise", "+33% chance to land a critical hit", "+50% chance to land a critical hit"},

	// ── Ritualist ──

	// Consume Soul (914): кража жизни 5...49...60 → 5...57...70, area → earshot
	{914, "description", "steal 5...60 Health", "steal 5...70 Health"},
	{914, "description", "creatures in the area of that foe", "creatures in earshot of that foe"},
	{914, "concise", "Steals 5...60 Health", "Steals 5...70 Health"},
	{914, "concise", "creatures in the area of target foe", "creatures in earshot of target foe"},

	// Doom (1264): 10...34...40 → 10...50...60
	{1264, "description", "10...40 lightning (maximum 135) damage", "10...60 lightning (maximum 135) damage"},
	{1264, "concise", "10...40 lightning damage (maximum 135)", "10...60 lightning damage (maximum 135)"},

	// Dulled Weapon (1235): длительность 5...13...15 → 5...17...20,
	// снижение урона 1...12...15 → -3...17...20 (в тексте — абсолютные 3...20)
	{1235, "description", "For 5...15 seconds", "For 5...20 seconds"},
	{1235, "description", "deal 1...15 less damage", "deal 3...20 less damage"},
	{1235, "concise", "(5...15 seconds)", "(5...20 seconds)"},
	{1235, "concise", "Reduces damage by 1...15", "Reduces damage by 3...20"},

	// Ghostly Haste (1244): 5...17...20 → 5...25...30
	{1244, "description", "For 5...20 seconds", "For 5...30 seconds"},
	{1244, "concise", "(5...20 seconds.)", "(5...30 seconds.)"},

	// Restoration (963): activation 5 → 3 — только PvP-split, см. 20260205-pvp.

	// Wailing Weapon (794): 3...8...9 → 3...12...14
	{794, "description", "For 3...9 seconds", "For 3...14 seconds"},
	{794, "concise", "(3...9 seconds.)", "(3...14 seconds.)"},

	// Weapon of Renewal (2149): 4...9...10 → 5...17...20
	{2149, "description", "For 4...10 seconds", "For 5...20 seconds"},
	{2149, "concise", "(4...10 seconds.)", "(5...20 seconds.)"},

	// Wielder's Zeal (1737): 10...26...30 → 10...34...40
	{1737, "description", "For 10...30 seconds", "For 10...40 seconds"},
	{1737, "concise", "(10...30 seconds.)", "(10...40 seconds.)"},

	// ── Dervish ──

	// Arcane Zeal (1502): энергия за энчант 1 → 2, максимум 1...7 → 2...7
	{1502, "description",
		"gain 1 Energy for each enchantment on you (maximum 1...7 Energy)",
		"gain 2 Energy for each enchantment on you (maximum 2...7 Energy)"},
	{1502, "concise", "gain 1 Energy (maximum 1...7)", "gain 2 Energy (maximum 2...7)"},

	// Dwayna's Touch (1528): 15...51...60 за энчант (максимум 150) → плоские 60 (максимум 60...204...240)
	{1528, "description",
		"healed for 15...60 Health for each Enchantment on you (maximum 150)",
		"healed for 60 Health for each Enchantment on you (maximum 60...240)"},
	{1528, "concise", "Heals for 15...60 (maximum 150)", "Heals for 60 (maximum 60...240)"},

	// Ebon Dust Aura (1760): +3...13...15 → +3...25...30
	{1760, "description", "+3...15 earth damage", "+3...30 earth damage"},
	{1760, "concise", "+3...15 earth damage", "+3...30 earth damage"},

	// Featherfoot Grace (1766): кондиции спадают на 25% → 50% быстрее
	{1766, "description", "conditions expire 25% faster", "conditions expire 50% faster"},
	{1766, "concise", "conditions expire 25% faster", "conditions expire 50% faster"},

	// Grenth's Grasp (1756): переносимых кондиций 1 → 1...3...3
	{1756, "description", "transfer 1 condition", "transfer 1...3 conditions"},
	{1756, "concise", "transfer 1 condition", "transfer 1...3 conditions"},

	// Mystic Corruption (1755): Disease 1...2...2 → 1...8...10
	{1755, "description", "Disease for 1...2 seconds", "Disease for 1...10 seconds"},
	{1755, "concise", "Diseased (1...2 seconds.)", "Diseased (1...10 seconds.)"},

	// Pious Restoration (1529): снимаемых хексов 1...2...2 → 1...3...3
	{1529, "description", "also lose 1...2 hexes", "also lose 1...3 hexes"},
	{1529, "concise", "lose 1...2 hexes", "lose 1...3 hexes"},

	// Signet of Pious Restraint (2014): nearby → in the area
	{2014, "description",
		"foes nearby your target are also Crippled",
		"foes in the area of your target are also Crippled"},
	{2014, "concise", "foes nearby your target", "foes in the area of your target"},

	// Test of Faith (1545): 15...55...65 → 15...63...75
	{1545, "description", "15...65 cold damage", "15...75 cold damage"},
	{1545, "concise", "15...65 cold damage", "15...75 cold damage"},

	// ── Paragon ──

	// Angelic Protection (1586): порог 250...130...100 → 250...114...80
	{1586, "description", "more than 250...100 damage", "more than 250...80 damage"},
	{1586, "concise", "damage over 250...100", "damage over 250...80"},

	// Energizing Finale (1775): энергия 1 → 1...2...2
	{1775, "description", "that ally gains 1 Energy", "that ally gains 1...2 Energy"},
	{1775, "concise", "gains 1 Energy", "gains 1...2 Energy"},

	// Hasty Refrain (2075): 3...9...11 → 3...13...15
	{2075, "description", "For 3...11 seconds", "For 3...15 seconds"},
	{2075, "concise", "(3...11 seconds.)", "(3...15 seconds.)"},

	// Inspirational Speech (2207): адреналин 1...3...4 → 1...7...8
	{2207, "description", "gains 1...4 strikes of adrenaline", "gains 1...8 strikes of adrenaline"},
	{2207, "concise", "gains 1...4 strikes", "gains 1...8 strikes"},

	// Leader's Zeal (1583): энергия за союзника 2 → 2...4...4
	{1583, "description", "gain 2 Energy (maximum 8...12 Energy)", "gain 2...4 Energy (maximum 8...12 Energy)"},
	{1583, "concise", "gain 2 Energy (maximum 8...12 Energy)", "gain 2...4 Energy (maximum 8...12 Energy)"},

	// Song of Purification (1570): скиллов 1...3...3 → 1...5...6
	{1570, "description", "next 1...3 skills", "next 1...6 skills"},
	{1570, "concise", "next 1...3 skills", "next 1...6 skills"},
}
