package registry

import "github.com/alexanderramin/helpshift/internal/shiftcode"

var defaultEmployees = []string{"佐渡", "大塚", "和田", "新門", "大田", "山下", "大久保", "石田", "米山"}

var defaultAreas = []Area{
	{Name: "中央エリア", Stores: []Store{
		{Name: "本店", Color: "#0070C2"},
		{Name: "武店", Color: "#D2A000"},
		{Name: "任天堂", Color: "#FF7C80"},
		{Name: "市役所前", Color: "#FF6600"},
		{Name: "クローバー", Color: "#00B050"},
		{Name: "郡元店", Color: "#0000FF"},
		{Name: "ケンコー堂", Color: "#7030A0"},
		{Name: "宇宿店", Color: "#00B0F0"},
		{Name: "ジャック", Color: "#FF3399"},
	}},
	{Name: "西エリア", Stores: []Store{
		{Name: "郡山店", Color: "#4472C4"},
		{Name: "大王店", Color: "#ED7D31"},
		{Name: "市比野店", Color: "#A5A5A5"},
		{Name: "天辰店", Color: "#FFC000"},
		{Name: "出水店", Color: "#5B9BD5"},
	}},
	{Name: "北エリア", Stores: []Store{
		{Name: "ピッコロ", Color: "#70AD47"},
		{Name: "加治木店", Color: "#264478"},
		{Name: "霧島店", Color: "#9E480E"},
	}},
	{Name: "南薩エリア", Stores: []Store{
		{Name: "チェリー", Color: "#BF8F00"},
		{Name: "ひかり", Color: "#43682B"},
		{Name: "屋久島店", Color: "#698ED0"},
		{Name: "南さつま店", Color: "#A6A6A6"},
	}},
	{Name: "宮崎エリア", Stores: []Store{
		{Name: "東町店", Color: "#8497B0"},
		{Name: "早鈴店", Color: "#F2A104"},
		{Name: "三股店", Color: "#305496"},
		{Name: "とだか", Color: "#C55A11"},
		{Name: "さくら", Color: "#548235"},
	}},
}

// Default returns the built-in directory.
func Default() *Registry {
	pal := shiftcode.DefaultPalette()
	keywords := make([]Keyword, 0, len(shiftcode.DefaultSpecialKinds))
	for _, k := range shiftcode.DefaultSpecialKinds {
		keywords = append(keywords, Keyword{Name: k, Background: pal.Specials[k]})
	}
	r, err := New(defaultEmployees, defaultAreas, keywords)
	if err != nil {
		panic("registry: invalid built-in directory: " + err.Error())
	}
	return r
}
