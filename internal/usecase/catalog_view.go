package usecase

import (
	"strconv"

	"github.com/DRSN-tech/food-delivery/internal/domain"
)

const sectionAnchorPrefix = "category-"

// ComputeSections строит представление каталога для текущего выбора.
//
// Без выбора возвращаются категории первого уровня, у которых есть непустые дети второго уровня,
// вместе с этими детьми. Для выбранной категории второго уровня возвращаются разделы:
// сначала её собственные товары (если есть), затем по разделу на каждого непустого ребёнка
// третьего уровня. В раздел ребёнка попадают товары всего его поддерева.
// Выбор, которого нет в дереве, трактуется как корень.
func ComputeSections(selected *int64, tree *domain.CategoryTree, lang domain.Language) CatalogView {
	if selected != nil {
		if c, ok := tree.Category(*selected); ok {
			return computeCategorySections(c, tree, lang)
		}
	}

	view := CatalogView{Language: lang}
	for _, root := range tree.NonEmptyChildren(nil) {
		rootID := root.ID
		children := tree.NonEmptyChildren(&rootID)
		if len(children) == 0 {
			continue
		}

		group := CategoryGroup{
			Category: NewCategoryRef(root, lang),
			Children: make([]CategoryRef, 0, len(children)),
		}
		for _, child := range children {
			group.Children = append(group.Children, NewCategoryRef(child, lang))
		}

		view.Groups = append(view.Groups, group)
	}

	view.Empty = len(view.Groups) == 0
	return view
}

func computeCategorySections(c *domain.Category, tree *domain.CategoryTree, lang domain.Language) CatalogView {
	ref := NewCategoryRef(c, lang)
	view := CatalogView{Language: lang, Selected: &ref}

	if direct := tree.Products(c.ID); len(direct) > 0 {
		view.Sections = append(view.Sections, newSection(c, lang, direct))
	}

	id := c.ID
	for _, child := range tree.NonEmptyChildren(&id) {
		products := tree.SubtreeProducts(child.ID)
		if len(products) == 0 {
			continue
		}
		view.Sections = append(view.Sections, newSection(child, lang, products))
	}

	view.Empty = len(view.Sections) == 0
	return view
}

func newSection(c *domain.Category, lang domain.Language, products []domain.Product) ProductSection {
	return ProductSection{
		CategoryID: c.ID,
		Title:      c.Title(lang),
		Anchor:     sectionAnchorPrefix + strconv.FormatInt(c.ID, 10),
		Products:   products,
	}
}

// isNavigable — категорию можно открыть, только если это непустой ребёнок непустой категории первого уровня.
func isNavigable(tree *domain.CategoryTree, id int64) bool {
	c, ok := tree.Category(id)
	if !ok || c.ParentID == nil || !tree.IsNonEmpty(id) {
		return false
	}

	return tree.IsRoot(*c.ParentID) && tree.IsNonEmpty(*c.ParentID)
}
