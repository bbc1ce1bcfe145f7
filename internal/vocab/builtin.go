package vocab

// BuiltinKey is the key of the vocabulary that always exists.
const BuiltinKey = "latin"

// BuiltinName is the display name of the built-in vocabulary.
const BuiltinName = "Lipsum"

// builtinLatin is the fallback filler vocabulary. Duplicates are removed on
// load; order is significant because candidate selection draws from it.
var builtinLatin = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit", "sed", "do", "eiusmod",
	"tempor", "incididunt", "ut", "labore", "et", "dolore", "magna", "aliqua", "enim", "minim", "veniam",
	"quis", "nostrud", "exercitation", "ullamco", "laboris", "nisi", "aliquip", "ex", "ea", "commodo",
	"consequat", "duis", "aute", "irure", "in", "reprehenderit", "voluptate", "velit", "esse", "cillum",
	"eu", "fugiat", "nulla", "pariatur", "excepteur", "sint", "occaecat", "cupidatat", "non", "proident",
	"sunt", "culpa", "qui", "officia", "deserunt", "mollit", "anim", "id", "est", "laborum",
	"praesent", "gravida", "luctus", "ultricies", "facilisi", "taciti", "sociosqu", "nascetur", "ridiculus", "mus",
	"pharetra", "vehicula", "varius", "dapibus", "congue", "porta", "bibendum", "hendrerit", "pulvinar", "placerat",
	"maximus", "efficitur", "dictum", "finibus", "sollicitudin", "integer", "fermentum", "curabitur", "phasellus", "malesuada",
	"morbi", "urna", "nibh", "ligula", "sapien", "commodo", "ornare", "vivamus", "accumsan", "fusce",
	"torquent", "per", "conubia", "nostra", "per", "inceptos", "himenaeos", "class", "aptent", "taciti",
	"arcu", "tellus", "semper", "fames", "montes", "natoque", "penatibus", "magnis", "dis", "parturient",
	"tristique", "senectus", "netus", "etiam", "rhoncus", "temporibus", "habitant", "platea", "dictumst", "tempus",
	"aliquet", "iaculis", "suscipit", "dignissim", "laoreet", "condimentum", "auctor", "scelerisque", "efficiendi",
	"praesentium", "voluptatum", "dolorum", "expedita", "quibusdam", "ratione", "aspernatur", "illum",
	"delectus", "reiciendis", "laudantium", "aperiam", "quaerat", "beatae", "distinctio", "veritatis", "numquam",
	"necessitatibus", "ad", "nihil", "magni", "omnis", "ducimus", "asperiores", "excepturi", "repellendus", "temporis",
	"et", "ut", "at", "ac", "nec", "non", "per", "cum", "sub", "supra", "post", "ante", "circa", "pro", "quo", "qua", "nam", "sed", "aut", "vel", "ne",
}

// Builtin returns a fresh copy of the built-in Latin vocabulary.
func Builtin() *Vocabulary {
	return New(BuiltinKey, BuiltinName, builtinLatin)
}
