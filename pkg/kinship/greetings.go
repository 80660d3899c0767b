package kinship

// Greetings returns example greeting phrases for a resolution, two per
// enumerated title. A custom label yields a single generic greeting unless
// the label is empty, in which case no greetings are produced. Unknown and
// self titles produce none.
//
// The switch is exhaustive over the closed Title type: a new vocabulary
// entry must be given phrases here before the resolver can return it.
func Greetings(res Resolution) []string {
	switch res.Title {
	case TitleCustom:
		if res.Label == "" {
			return nil
		}
		return []string{"Xin chào!"}
	case TitleSelf, TitleUnknown:
		return nil
	case TitleFather:
		return []string{"Thưa ba, con mới về ạ.", "Ba ơi, ba có khỏe không?"}
	case TitleMother:
		return []string{"Mẹ ơi, con nhớ mẹ lắm.", "Thưa mẹ, con mới về ạ."}
	case TitleChild:
		return []string{"Con ơi, lại đây với ba mẹ.", "Con ăn cơm chưa?"}
	case TitleHusband:
		return []string{"Anh ơi, em có chuyện muốn nói.", "Anh về sớm nhé!"}
	case TitleWife:
		return []string{"Em ơi, anh về rồi.", "Em có mệt không?"}
	case TitleSibling:
		return []string{"Chào anh/chị/em!", "Anh/chị/em dạo này thế nào?"}
	case TitlePaternalUncle:
		return []string{"Cháu chào chú ạ!", "Chú có khỏe không ạ?"}
	case TitlePaternalAunt:
		return []string{"Cháu chào cô ạ!", "Cô dạo này có khỏe không ạ?"}
	case TitleMaternalUncle:
		return []string{"Cháu chào cậu ạ!", "Cậu có khỏe không ạ?"}
	case TitleMaternalAunt:
		return []string{"Cháu chào dì ạ!", "Dì dạo này thế nào ạ?"}
	case TitlePaternalUncleWife:
		return []string{"Cháu chào thím ạ!", "Thím có khỏe không ạ?"}
	case TitleMaternalUncleWife:
		return []string{"Cháu chào mợ ạ!", "Mợ dạo này thế nào ạ?"}
	case TitleAuntHusband:
		return []string{"Cháu chào dượng ạ!", "Dượng có khỏe không ạ?"}
	case TitlePaternalGrandfather:
		return []string{"Cháu chào ông nội ạ!", "Ông ơi, ông có khỏe không ạ?"}
	case TitlePaternalGrandmother:
		return []string{"Cháu chào bà nội ạ!", "Bà ơi, cháu thương bà lắm."}
	case TitleMaternalGrandfather:
		return []string{"Cháu chào ông ngoại ạ!", "Ông ngoại dạo này có khỏe không ạ?"}
	case TitleMaternalGrandmother:
		return []string{"Cháu chào bà ngoại ạ!", "Bà ngoại ơi, cháu mới về ạ."}
	case TitleGrandparent:
		return []string{"Cháu chào ông bà ạ!", "Ông bà có khỏe không ạ?"}
	case TitleDescendant:
		return []string{"Cháu ơi, lại đây chơi!", "Cháu ngoan lắm!"}
	case TitleCousin:
		return []string{"Chào anh/chị/em họ!", "Lâu rồi không gặp, dạo này thế nào?"}
	case TitleCousinOlderM:
		return []string{"Chào anh họ!", "Anh dạo này thế nào?"}
	case TitleCousinOlderF:
		return []string{"Chào chị họ!", "Chị dạo này có khỏe không?"}
	case TitleCousinYounger:
		return []string{"Chào em họ!", "Em dạo này học hành thế nào?"}
	}
	return nil
}
