package keyboard

// Rect is a key region in diagram space (625x162 units).
type Rect struct {
	X, Y, W, H float64
}

// Key is one fixed region of the keyboard diagram.
type Key struct {
	ID    KeyID
	Label string
	Rect  Rect
}

// Diagram bounds in layout units.
const (
	DiagramWidth  = 625
	DiagramHeight = 162
)

var layout = []Key{
	// Function row
	{1, "ESC", Rect{20, 20, 25, 16}},
	{2, "F1", Rect{60, 20, 20, 16}},
	{3, "F2", Rect{85, 20, 20, 16}},
	{4, "F3", Rect{110, 20, 20, 16}},
	{5, "F4", Rect{135, 20, 20, 16}},
	{6, "F5", Rect{170, 20, 20, 16}},
	{7, "F6", Rect{195, 20, 20, 16}},
	{8, "F7", Rect{220, 20, 20, 16}},
	{9, "F8", Rect{245, 20, 20, 16}},
	{10, "F9", Rect{280, 20, 20, 16}},
	{11, "F10", Rect{305, 20, 20, 16}},
	{12, "F11", Rect{330, 20, 20, 16}},
	{13, "F12", Rect{355, 20, 20, 16}},
	{14, "PRNT", Rect{395, 20, 25, 16}},
	{15, "SCRL", Rect{425, 20, 25, 16}},
	{16, "PAUS", Rect{455, 20, 25, 16}},
	// Number row
	{17, "`", Rect{20, 42, 20, 18}},
	{18, "1", Rect{45, 42, 20, 18}},
	{19, "2", Rect{70, 42, 20, 18}},
	{20, "3", Rect{95, 42, 20, 18}},
	{21, "4", Rect{120, 42, 20, 18}},
	{22, "5", Rect{145, 42, 20, 18}},
	{23, "6", Rect{170, 42, 20, 18}},
	{24, "7", Rect{195, 42, 20, 18}},
	{25, "8", Rect{220, 42, 20, 18}},
	{26, "9", Rect{245, 42, 20, 18}},
	{27, "0", Rect{270, 42, 20, 18}},
	{28, "-", Rect{295, 42, 20, 18}},
	{29, "=", Rect{320, 42, 20, 18}},
	{30, "BKSP", Rect{345, 42, 30, 18}},
	{31, "INS", Rect{395, 42, 25, 18}},
	{32, "HOME", Rect{425, 42, 25, 18}},
	{33, "PGUP", Rect{455, 42, 25, 18}},
	{34, "NUM", Rect{500, 42, 25, 18}},
	{35, "/", Rect{530, 42, 25, 18}},
	{36, "*", Rect{560, 42, 25, 18}},
	{37, "-", Rect{590, 42, 25, 18}},
	// Top letter row
	{38, "TAB", Rect{20, 65, 30, 18}},
	{39, "Q", Rect{55, 65, 20, 18}},
	{40, "W", Rect{80, 65, 20, 18}},
	{41, "E", Rect{105, 65, 20, 18}},
	{42, "R", Rect{130, 65, 20, 18}},
	{43, "T", Rect{155, 65, 20, 18}},
	{44, "Y", Rect{180, 65, 20, 18}},
	{45, "U", Rect{205, 65, 20, 18}},
	{46, "I", Rect{230, 65, 20, 18}},
	{47, "O", Rect{255, 65, 20, 18}},
	{48, "P", Rect{280, 65, 20, 18}},
	{49, "[", Rect{305, 65, 20, 18}},
	{50, "]", Rect{330, 65, 20, 18}},
	{51, "\\", Rect{355, 65, 20, 18}},
	{52, "DEL", Rect{395, 65, 25, 18}},
	{53, "END", Rect{425, 65, 25, 18}},
	{54, "PGDN", Rect{455, 65, 25, 18}},
	{55, "7", Rect{500, 65, 25, 18}},
	{56, "8", Rect{530, 65, 25, 18}},
	{57, "9", Rect{560, 65, 25, 18}},
	{58, "+", Rect{590, 65, 25, 41}},
	// Home row
	{59, "CAPS", Rect{20, 88, 35, 18}},
	{60, "A", Rect{60, 88, 20, 18}},
	{61, "S", Rect{85, 88, 20, 18}},
	{62, "D", Rect{110, 88, 20, 18}},
	{63, "F", Rect{135, 88, 20, 18}},
	{64, "G", Rect{160, 88, 20, 18}},
	{65, "H", Rect{185, 88, 20, 18}},
	{66, "J", Rect{210, 88, 20, 18}},
	{67, "K", Rect{235, 88, 20, 18}},
	{68, "L", Rect{260, 88, 20, 18}},
	{69, ";", Rect{285, 88, 20, 18}},
	{70, "'", Rect{310, 88, 20, 18}},
	{71, "ENTER", Rect{335, 88, 40, 18}},
	{72, "4", Rect{500, 88, 25, 18}},
	{73, "5", Rect{530, 88, 25, 18}},
	{74, "6", Rect{560, 88, 25, 18}},
	// Bottom letter row
	{75, "SHIFT", Rect{20, 111, 45, 18}},
	{76, "Z", Rect{70, 111, 20, 18}},
	{77, "X", Rect{95, 111, 20, 18}},
	{78, "C", Rect{120, 111, 20, 18}},
	{79, "V", Rect{145, 111, 20, 18}},
	{80, "B", Rect{170, 111, 20, 18}},
	{81, "N", Rect{195, 111, 20, 18}},
	{82, "M", Rect{220, 111, 20, 18}},
	{83, ",", Rect{245, 111, 20, 18}},
	{84, ".", Rect{270, 111, 20, 18}},
	{85, "/", Rect{295, 111, 20, 18}},
	{86, "SHIFT", Rect{320, 111, 55, 18}},
	{87, "↑", Rect{425, 111, 25, 18}},
	{88, "1", Rect{500, 111, 25, 18}},
	{89, "2", Rect{530, 111, 25, 18}},
	{90, "3", Rect{560, 111, 25, 18}},
	{91, "ENTR", Rect{590, 111, 25, 41}},
	// Modifier row
	{92, "CTRL", Rect{20, 134, 30, 18}},
	{93, "WIN", Rect{55, 134, 25, 18}},
	{94, "ALT", Rect{85, 134, 25, 18}},
	{95, "SPACE", Rect{115, 134, 150, 18}},
	{96, "ALT", Rect{270, 134, 25, 18}},
	{97, "WIN", Rect{300, 134, 25, 18}},
	{98, "MNU", Rect{330, 134, 25, 18}},
	{99, "CTRL", Rect{360, 134, 30, 18}},
	{100, "←", Rect{395, 134, 25, 18}},
	{101, "↓", Rect{425, 134, 25, 18}},
	{102, "→", Rect{455, 134, 25, 18}},
	{103, "0", Rect{500, 134, 55, 18}},
	{104, ".", Rect{560, 134, 25, 18}},
}

// Layout returns the keyboard regions ordered by KeyID. The slice is a copy.
func Layout() []Key {
	keys := make([]Key, len(layout))
	copy(keys, layout)
	return keys
}
