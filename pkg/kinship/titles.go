package kinship

// Title is a term from the Vietnamese kinship vocabulary. The set is
// closed: the resolver's rule table and the greeting table both switch over
// it exhaustively.
type Title string

const (
	TitleSelf    Title = "Tôi"
	TitleFather  Title = "Ba"
	TitleMother  Title = "Mẹ"
	TitleChild   Title = "Con"
	TitleHusband Title = "Chồng"
	TitleWife    Title = "Vợ"

	// TitleSibling is the combined sibling form; selecting Anh/Chị/Em by
	// birth order is a known gap in the rule table.
	TitleSibling Title = "Anh/Chị/Em"

	// Parent's siblings, by lineage and gender.
	TitlePaternalUncle Title = "Chú"
	TitlePaternalAunt  Title = "Cô"
	TitleMaternalUncle Title = "Cậu"
	TitleMaternalAunt  Title = "Dì"

	// Spouses of parent's siblings.
	TitlePaternalUncleWife Title = "Thím"
	TitleMaternalUncleWife Title = "Mợ"
	TitleAuntHusband       Title = "Dượng"

	// Grandparents, by lineage and gender, plus the combined form for an
	// unknown-gender ancestor.
	TitlePaternalGrandfather Title = "Ông nội"
	TitlePaternalGrandmother Title = "Bà nội"
	TitleMaternalGrandfather Title = "Ông ngoại"
	TitleMaternalGrandmother Title = "Bà ngoại"
	TitleGrandparent         Title = "Ông/Bà"

	// TitleDescendant covers grandchildren and niece/nephew generations.
	TitleDescendant Title = "Cháu"

	// TitleCousin is the generic cousin form. The gendered, seniority-
	// specific variants below are part of the vocabulary but the rule
	// table does not yet select among them.
	TitleCousin        Title = "Anh/Chị/Em họ"
	TitleCousinOlderM  Title = "Anh họ"
	TitleCousinOlderF  Title = "Chị họ"
	TitleCousinYounger Title = "Em họ"

	// TitleCustom marks a resolution carrying a user-stored label; the
	// label itself travels alongside, not in the Title.
	TitleCustom Title = "custom"

	TitleUnknown Title = "Không xác định"
)

// String returns the Vietnamese term for the title.
func (t Title) String() string {
	return string(t)
}
