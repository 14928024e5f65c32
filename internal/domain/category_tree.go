package domain

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// MissingSortOrder подставляется вместо незаданного sort_order, такие категории идут в конце.
const MissingSortOrder = 9999

// CategoryTree — индекс категорий ресторана: дети каждого узла в порядке показа
// и множество категорий, в поддереве которых есть хотя бы один товар.
// Строится один раз на загруженный каталог и дальше только читается.
type CategoryTree struct {
	byID     map[int64]*Category
	roots    []*Category
	children map[int64][]*Category
	products map[int64][]Product
	nonEmpty map[int64]bool
}

// BuildCategoryTree строит индекс по плоским спискам категорий и товаров.
// Категория с parent_id, указывающим на несуществующую категорию, недостижима из корня.
// Циклы в данных не отвергаются: повторный заход в узел при обходе считается пустым поддеревом.
func BuildCategoryTree(categories []Category, products []Product) *CategoryTree {
	t := &CategoryTree{
		byID:     make(map[int64]*Category, len(categories)),
		children: make(map[int64][]*Category),
		products: make(map[int64][]Product),
		nonEmpty: make(map[int64]bool, len(categories)),
	}

	cats := make([]Category, len(categories))
	copy(cats, categories)

	for i := range cats {
		c := &cats[i]
		t.byID[c.ID] = c
	}

	for _, c := range t.byID {
		if c.ParentID == nil {
			t.roots = append(t.roots, c)
			continue
		}
		t.children[*c.ParentID] = append(t.children[*c.ParentID], c)
	}

	col := collate.New(language.Russian)
	sortSiblings(t.roots, col)
	for id := range t.children {
		sortSiblings(t.children[id], col)
	}

	for _, p := range products {
		if _, ok := t.byID[p.CategoryID]; ok {
			t.products[p.CategoryID] = append(t.products[p.CategoryID], p)
		}
	}

	t.markNonEmpty()

	return t
}

func sortSiblings(list []*Category, col *collate.Collator) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := sortOrderOf(list[i]), sortOrderOf(list[j])
		if a != b {
			return a < b
		}

		if cmp := col.CompareString(list[i].NameRu, list[j].NameRu); cmp != 0 {
			return cmp < 0
		}

		return list[i].ID < list[j].ID
	})
}

func sortOrderOf(c *Category) int {
	if c.SortOrder == nil {
		return MissingSortOrder
	}

	return *c.SortOrder
}

const (
	unvisited = iota
	inProgress
	done
)

type frame struct {
	id   int64
	next int
}

// markNonEmpty — итеративный post-order обход. Узел, встреченный в состоянии inProgress,
// означает цикл и не делает родителя непустым.
func (t *CategoryTree) markNonEmpty() {
	state := make(map[int64]int, len(t.byID))

	ids := make([]int64, 0, len(t.byID))
	for id := range t.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, start := range ids {
		if state[start] != unvisited {
			continue
		}

		state[start] = inProgress
		stack := []frame{{id: start}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			kids := t.children[top.id]

			if top.next < len(kids) {
				kid := kids[top.next].ID
				top.next++
				if state[kid] == unvisited {
					state[kid] = inProgress
					stack = append(stack, frame{id: kid})
				}
				continue
			}

			nonEmpty := len(t.products[top.id]) > 0
			for _, k := range kids {
				if state[k.ID] == done && t.nonEmpty[k.ID] {
					nonEmpty = true
					break
				}
			}

			t.nonEmpty[top.id] = nonEmpty
			state[top.id] = done
			stack = stack[:len(stack)-1]
		}
	}
}

// Category возвращает категорию по id.
func (t *CategoryTree) Category(id int64) (*Category, bool) {
	c, ok := t.byID[id]
	return c, ok
}

// Children возвращает отсортированных детей; nil означает корень.
func (t *CategoryTree) Children(parentID *int64) []*Category {
	if parentID == nil {
		return t.roots
	}

	return t.children[*parentID]
}

// NonEmptyChildren — только дети с товарами в поддереве, порядок сохраняется.
func (t *CategoryTree) NonEmptyChildren(parentID *int64) []*Category {
	all := t.Children(parentID)
	out := make([]*Category, 0, len(all))
	for _, c := range all {
		if t.nonEmpty[c.ID] {
			out = append(out, c)
		}
	}

	return out
}

// IsNonEmpty сообщает, есть ли товары в категории или в её поддереве.
func (t *CategoryTree) IsNonEmpty(id int64) bool {
	return t.nonEmpty[id]
}

// Products возвращает товары, привязанные непосредственно к категории, в порядке каталога.
func (t *CategoryTree) Products(categoryID int64) []Product {
	return t.products[categoryID]
}

// SubtreeProducts собирает товары категории и всех её потомков (обход в глубину в порядке показа).
func (t *CategoryTree) SubtreeProducts(categoryID int64) []Product {
	var (
		out     []Product
		visited = map[int64]bool{categoryID: true}
		stack   = []int64{categoryID}
	)

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		out = append(out, t.products[id]...)

		kids := t.children[id]
		for i := len(kids) - 1; i >= 0; i-- {
			if !visited[kids[i].ID] {
				visited[kids[i].ID] = true
				stack = append(stack, kids[i].ID)
			}
		}
	}

	return out
}

// IsRoot сообщает, что категория первого уровня.
func (t *CategoryTree) IsRoot(id int64) bool {
	c, ok := t.byID[id]
	return ok && c.ParentID == nil
}
