package block

import "fmt"

// BlockID представляет код типа блока (материала) в сетке мира.
// Код 0 зарезервирован под воздух и является значением ячейки по умолчанию.
type BlockID uint8

// Константы ID блоков. Нумерация стабильна: на неё опираются конфиги и API.
const (
	// Блоки ландшафта
	Air     BlockID = iota // 0
	Grass                  // 1
	Dirt                   // 2
	Stone                  // 3
	Coal                   // 4 - угольная руда
	Iron                   // 5 - железная руда
	Gold                   // 6 - золотая руда
	Diamond                // 7 - алмазная руда
	Wood                   // 8
	Leaves                 // 9
	Sand                   // 10
	Gravel                 // 11
	Water                  // 12
	Lava                   // 13
	Bedrock                // 14

	// Блоки, которые появляются только от игрока
	Planks   // 15
	Glass    // 16
	Torch    // 17
	Crafting // 18 - верстак
	Furnace  // 19

	// Предметы: живут только в инвентаре, в генерации не участвуют
	Stick      // 20
	CoalItem   // 21
	IronIngot  // 22
	GoldIngot  // 23
	DiamondGem // 24
	WoodPick   // 25
	StonePick  // 26
	IronPick   // 27
)

// Коды 28 и 29 не назначены.
const (
	WoodAxe    BlockID = 30 + iota // 30
	StoneAxe                       // 31
	IronAxe                        // 32
	WoodSword                      // 33
	StoneSword                     // 34
	IronSword                      // 35

	// Count - размер таблицы свойств, всегда на единицу больше последнего кода
	Count
)

// Valid проверяет, назначен ли код какому-либо блоку или предмету
func Valid(id BlockID) bool {
	return id < Count && table[id].Name != ""
}

// Name возвращает имя блока ("stone", "diamond"...)
func (id BlockID) Name() string {
	if !Valid(id) {
		return ""
	}
	return table[id].Name
}

// String реализует fmt.Stringer
func (id BlockID) String() string {
	if name := id.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("block(%d)", uint8(id))
}

// ByName ищет блок по имени
func ByName(name string) (BlockID, bool) {
	id, ok := byName[name]
	return id, ok
}

// MarshalText кодирует блок его именем (используется yaml и json)
func (id BlockID) MarshalText() ([]byte, error) {
	if !Valid(id) {
		return nil, fmt.Errorf("неизвестный код блока %d", uint8(id))
	}
	return []byte(id.Name()), nil
}

// UnmarshalText декодирует блок по имени
func (id *BlockID) UnmarshalText(text []byte) error {
	found, ok := ByName(string(text))
	if !ok {
		return fmt.Errorf("неизвестный блок %q", string(text))
	}
	*id = found
	return nil
}

// All возвращает все назначенные коды по возрастанию
func All() []BlockID {
	ids := make([]BlockID, 0, Count)
	for id := BlockID(0); id < Count; id++ {
		if Valid(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

var byName = func() map[string]BlockID {
	m := make(map[string]BlockID, Count)
	for id := BlockID(0); id < Count; id++ {
		if name := table[id].Name; name != "" {
			m[name] = id
		}
	}
	return m
}()
