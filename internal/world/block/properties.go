package block

// Properties описывает статические свойства блока.
// Drop == Air означает "выпадает сам блок", если только не выставлен NoDrop.
// Предметы (инструменты, слитки) живут только в инвентаре и не ставятся в сетку.
type Properties struct {
	Name      string
	Solid     bool    // участвует в коллизиях
	Placeable bool    // игрок может поставить блок в пустую ячейку
	Drop      BlockID // что получает игрок при добыче
	NoDrop    bool    // добыча ничего не даёт
	Glyph     rune    // символ для текстового рендера
}

// table индексируется кодом блока. Размер массива задан через Count,
// поэтому новый код без строки в таблице ловится тестом на полноту.
var table = [Count]Properties{
	Air:     {Name: "air", NoDrop: true, Glyph: ' '},
	Grass:   {Name: "grass", Placeable: true, Solid: true, Drop: Dirt, Glyph: '"'},
	Dirt:    {Name: "dirt", Placeable: true, Solid: true, Glyph: '%'},
	Stone:   {Name: "stone", Placeable: true, Solid: true, Glyph: '#'},
	Coal:    {Name: "coal", Placeable: true, Solid: true, Glyph: 'c'},
	Iron:    {Name: "iron", Placeable: true, Solid: true, Glyph: 'i'},
	Gold:    {Name: "gold", Placeable: true, Solid: true, Glyph: 'g'},
	Diamond: {Name: "diamond", Placeable: true, Solid: true, Glyph: 'd'},
	Wood:    {Name: "wood", Placeable: true, Solid: true, Glyph: '|'},
	Leaves:  {Name: "leaves", Placeable: true, NoDrop: true, Glyph: '*'},
	Sand:    {Name: "sand", Placeable: true, Solid: true, Glyph: '.'},
	Gravel:  {Name: "gravel", Placeable: true, Solid: true, Glyph: ':'},
	Water:   {Name: "water", Placeable: true, NoDrop: true, Glyph: '~'},
	Lava:    {Name: "lava", Placeable: true, NoDrop: true, Glyph: '^'},
	Bedrock: {Name: "bedrock", Solid: true, NoDrop: true, Glyph: '@'},

	Planks:   {Name: "planks", Placeable: true, Solid: true, Glyph: '='},
	Glass:    {Name: "glass", Placeable: true, Solid: true, NoDrop: true, Glyph: 'o'},
	Torch:    {Name: "torch", Placeable: true, Glyph: '!'},
	Crafting: {Name: "crafting", Placeable: true, Solid: true, Glyph: 'T'},
	Furnace:  {Name: "furnace", Placeable: true, Solid: true, Glyph: 'F'},

	Stick:      {Name: "stick", Glyph: '/'},
	CoalItem:   {Name: "coal_item", Glyph: '/'},
	IronIngot:  {Name: "iron_ingot", Glyph: '/'},
	GoldIngot:  {Name: "gold_ingot", Glyph: '/'},
	DiamondGem: {Name: "diamond_gem", Glyph: '/'},
	WoodPick:   {Name: "wood_pick", Glyph: '/'},
	StonePick:  {Name: "stone_pick", Glyph: '/'},
	IronPick:   {Name: "iron_pick", Glyph: '/'},
	WoodAxe:    {Name: "wood_axe", Glyph: '/'},
	StoneAxe:   {Name: "stone_axe", Glyph: '/'},
	IronAxe:    {Name: "iron_axe", Glyph: '/'},
	WoodSword:  {Name: "wood_sword", Glyph: '/'},
	StoneSword: {Name: "stone_sword", Glyph: '/'},
	IronSword:  {Name: "iron_sword", Glyph: '/'},
}

// Get возвращает свойства блока и признак того, что код назначен
func Get(id BlockID) (Properties, bool) {
	if !Valid(id) {
		return Properties{}, false
	}
	return table[id], true
}

// IsSolid возвращает true, если блок участвует в коллизиях
func IsSolid(id BlockID) bool {
	p, ok := Get(id)
	return ok && p.Solid
}

// IsPlaceable возвращает true, если код можно поставить в сетку.
// Воздух, бедрок и предметы не ставятся.
func IsPlaceable(id BlockID) bool {
	p, ok := Get(id)
	return ok && p.Placeable
}

// DropOf возвращает код, который получает игрок при добыче блока.
// Второе значение false, если блок ничего не роняет.
func DropOf(id BlockID) (BlockID, bool) {
	p, ok := Get(id)
	if !ok || p.NoDrop {
		return Air, false
	}
	if p.Drop == Air {
		return id, true
	}
	return p.Drop, true
}

// Glyph возвращает символ блока для текстового рендера
func Glyph(id BlockID) rune {
	p, ok := Get(id)
	if !ok {
		return '?'
	}
	return p.Glyph
}
