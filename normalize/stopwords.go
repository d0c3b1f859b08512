package normalize

// stopWords lists common English words excluded from the vocabulary.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "being": true,
	"do": true, "does": true, "did": true, "have": true, "has": true,
	"had": true, "will": true, "would": true, "could": true, "should": true,
	"may": true, "might": true, "can": true, "shall": true, "must": true,
	"not": true, "no": true, "nor": true, "and": true, "or": true,
	"but": true, "if": true, "then": true, "than": true, "so": true,
	"as": true, "at": true, "by": true, "for": true, "from": true,
	"in": true, "into": true, "of": true, "on": true, "onto": true,
	"to": true, "with": true, "about": true, "against": true, "between": true,
	"through": true, "during": true, "before": true, "after": true, "above": true,
	"below": true, "up": true, "down": true, "out": true, "off": true,
	"over": true, "under": true, "again": true, "further": true, "once": true,
	"here": true, "there": true, "all": true, "any": true, "both": true,
	"each": true, "few": true, "more": true, "most": true, "other": true,
	"some": true, "such": true, "only": true, "own": true, "same": true,
	"very": true, "just": true, "too": true, "it": true, "its": true,
	"itself": true, "this": true, "that": true, "these": true, "those": true,
	"what": true, "which": true, "who": true, "whom": true, "how": true,
	"when": true, "where": true, "why": true, "i": true, "me": true,
	"my": true, "myself": true, "we": true, "our": true, "ours": true,
	"you": true, "your": true, "yours": true, "he": true, "him": true,
	"his": true, "himself": true, "she": true, "her": true, "hers": true,
	"herself": true, "they": true, "them": true, "their": true, "theirs": true,
	"while": true, "because": true, "until": true, "now": true,
}
