package mapgen

import "github.com/osse101/GielinorRush_Go/internal/domain"

// Location is a named spot in game-world coordinates.
type Location struct {
	Name string
	X, Y int
}

var locations = []Location{
	{"Lumbridge", 3222, 3218},
	{"Varrock", 3213, 3424},
	{"Falador", 2965, 3380},
	{"Draynor Village", 3093, 3244},
	{"Al Kharid", 3293, 3174},
	{"Edgeville", 3087, 3496},
	{"Barbarian Village", 3082, 3420},
	{"Port Sarim", 3023, 3208},
	{"Rimmington", 2957, 3214},
	{"Taverley", 2894, 3456},
	{"Burthorpe", 2899, 3544},
	{"Catherby", 2813, 3447},
	{"Camelot", 2757, 3477},
	{"Seers' Village", 2708, 3483},
	{"East Ardougne", 2662, 3305},
	{"Yanille", 2606, 3093},
	{"Brimhaven", 2760, 3178},
	{"Musa Point", 2914, 3176},
	{"Shilo Village", 2852, 2955},
	{"Tai Bwo Wannai", 2789, 3065},
	{"Canifis", 3494, 3488},
	{"Port Phasmatys", 3687, 3467},
	{"Mort'ton", 3489, 3288},
	{"Burgh de Rott", 3497, 3211},
	{"Slayer Tower", 3428, 3537},
	{"Darkmeyer", 3592, 3337},
	{"Fossil Island", 3724, 3808},
	{"Rellekka", 2659, 3657},
	{"Neitiznot", 2336, 3801},
	{"Jatizso", 2412, 3804},
	{"Waterbirth Island", 2544, 3758},
	{"Lunar Isle", 2100, 3914},
	{"Miscellania", 2536, 3865},
	{"Etceteria", 2613, 3870},
	{"Trollheim", 2887, 3676},
	{"Death Plateau", 2864, 3592},
	{"God Wars Dungeon", 2916, 3746},
	{"Ferox Enclave", 3132, 3628},
	{"Lava Maze", 3060, 3850},
	{"Mage Arena", 3105, 3934},
	{"Pollnivneach", 3359, 2974},
	{"Nardah", 3428, 2916},
	{"Sophanem", 3293, 2781},
	{"Menaphos", 3221, 2782},
	{"Tree Gnome Stronghold", 2461, 3444},
	{"Tree Gnome Village", 2525, 3167},
	{"Lletya", 2341, 3171},
	{"Castle Wars", 2442, 3090},
	{"Piscatoris", 2339, 3689},
	{"Ape Atoll", 2755, 2784},
	{"Mos Le'Harmless", 3686, 2969},
	{"Kourend Castle", 1639, 3673},
	{"Hosidius", 1744, 3517},
	{"Shayzien", 1504, 3615},
	{"Lovakengj", 1504, 3819},
	{"Arceuus", 1699, 3883},
	{"Port Piscarilius", 1803, 3748},
	{"Wintertodt Camp", 1630, 3944},
	{"Mount Quidamortem", 1234, 3565},
	{"Civitas illa Fortis", 1680, 3110},
	{"Feldip Hills", 2550, 2950},
	{"Corsair Cove", 2570, 2860},
	{"Zul-Andra", 2200, 3055},
	{"Port Khazard", 2660, 3160},
	{"Fishing Guild", 2611, 3393},
	{"Legends' Guild", 2729, 3348},
	{"Witchaven", 2720, 3282},
	{"Lumbridge Swamp", 3197, 3169},
	{"Digsite", 3350, 3420},
	{"Paterdomus", 3405, 3488},
	{"Grand Exchange", 3164, 3487},
	{"Draynor Manor", 3109, 3350},
	{"Champions' Guild", 3191, 3362},
	{"Crafting Guild", 2933, 3289},
	{"Entrana", 2834, 3335},
}

var paths = []domain.PathInfo{
	{Name: "mountain", KeyColor: domain.KeyRed, Difficulty: "hard"},
	{Name: "trade", KeyColor: domain.KeyBlue, Difficulty: "normal"},
	{Name: "coastal", KeyColor: domain.KeyGreen, Difficulty: "easy"},
}

// Tiers of the three nodes in a location group.
var groupTiers = []int{1, 3, 5}

// tierGPPercent is the GP multiplier per difficulty tier, in percent.
var tierGPPercent = map[int]int64{
	1: 50,
	2: 75,
	3: 100,
	4: 125,
	5: 150,
}

func tierBucket(tier int) domain.ContentDifficulty {
	switch {
	case tier <= 2:
		return domain.ContentEasy
	case tier <= 4:
		return domain.ContentMedium
	default:
		return domain.ContentHard
	}
}
