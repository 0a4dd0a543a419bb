package topic

import (
	"strings"

	"github.com/rmncha/health-assistant/backend/internal/model/locale"
)

// trigger 将一个主题与其触发词关联。
type trigger struct {
	Topic    locale.Topic
	Keywords []string
}

// Trigger lists are authored per language and are not translations of each
// other. The Hindi list has no "teen"/"toddler" equivalents, and "बच्चा"
// routes to newborn while "बच्चे" routes to child.
var triggers = map[locale.Language][]trigger{
	locale.English: {
		{locale.Pregnancy, []string{"pregnancy", "pregnant"}},
		{locale.Newborn, []string{"baby", "infant", "newborn"}},
		{locale.Child, []string{"child", "toddler"}},
		{locale.Adolescent, []string{"adolescent", "teen"}},
		{locale.Scheme, []string{"scheme", "government", "assistance"}},
		{locale.Hospital, []string{"hospital", "doctor", "medical"}},
		{locale.Diet, []string{"diet", "nutrition", "food"}},
		{locale.Vaccination, []string{"vaccination", "vaccine", "immunization"}},
	},
	locale.Hindi: {
		{locale.Pregnancy, []string{"गर्भावस्था", "गर्भवती"}},
		{locale.Newborn, []string{"शिशु", "बच्चा", "नवजात"}},
		{locale.Child, []string{"बाल", "बच्चे"}},
		{locale.Adolescent, []string{"किशोर"}},
		{locale.Scheme, []string{"योजना", "सरकारी", "सहायता"}},
		{locale.Hospital, []string{"अस्पताल", "डॉक्टर", "चिकित्सा"}},
		{locale.Diet, []string{"आहार", "पोषण", "खाना"}},
		{locale.Vaccination, []string{"टीकाकरण", "टीका", "प्रतिरक्षण"}},
	},
}

// Classify 根据关键词将用户输入映射到主题。
// Topics are tested in priority order and the first match wins.
// Unsupported languages use the English triggers.
func Classify(text string, lang locale.Language) locale.Topic {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return locale.Default
	}

	for _, t := range triggers[lang.OrEnglish()] {
		for _, word := range t.Keywords {
			if strings.Contains(normalized, word) {
				return t.Topic
			}
		}
	}
	return locale.Default
}

// Keywords returns a copy of the trigger words for topic in lang.
func Keywords(t locale.Topic, lang locale.Language) []string {
	for _, entry := range triggers[lang.OrEnglish()] {
		if entry.Topic == t {
			return append([]string(nil), entry.Keywords...)
		}
	}
	return nil
}

// Gap is a trigger that one language lacks. Missing is empty when the
// language has no triggers for Topic at all.
type Gap struct {
	Language locale.Language
	Topic    locale.Topic
	Missing  string
}

// untranslated lists English triggers the Hindi lists have no equivalent for.
var untranslated = []Gap{
	{Language: locale.Hindi, Topic: locale.Child, Missing: "toddler"},
	{Language: locale.Hindi, Topic: locale.Adolescent, Missing: "teen"},
}

// Coverage reports trigger asymmetries between languages. It is logged at
// startup; the lists are left as authored.
func Coverage() []Gap {
	var gaps []Gap
	for _, lang := range locale.Supported {
		for _, t := range locale.Topics {
			if len(Keywords(t, lang)) == 0 {
				gaps = append(gaps, Gap{Language: lang, Topic: t})
			}
		}
	}
	for _, g := range untranslated {
		if containsKeyword(Keywords(g.Topic, locale.English), g.Missing) {
			gaps = append(gaps, g)
		}
	}
	return gaps
}

func containsKeyword(list []string, keyword string) bool {
	for _, k := range list {
		if k == keyword {
			return true
		}
	}
	return false
}
