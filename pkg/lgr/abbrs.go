package lgr

// persons maps the person prefixes of LGR Rule 4 onto their names.
// A bare person digit is not itself a dictionary entry (Rule 5).
var persons = map[string]string{
	"1": "first person",
	"2": "second person",
	"3": "third person",
}

// standardAbbrs returns a fresh copy of the standard abbreviations
// listed in the appendix of the Leipzig Glossing Rules. Callers may
// mutate the returned map (policy files merge extra entries into it).
func standardAbbrs() map[string]string {
	return map[string]string{
		"A":     "agent-like argument of canonical transitive verb",
		"ABL":   "ablative",
		"ABS":   "absolutive",
		"ACC":   "accusative",
		"ADJ":   "adjective",
		"ADV":   "adverb(ial)",
		"AGR":   "agreement",
		"ALL":   "allative",
		"ANTIP": "antipassive",
		"APPL":  "applicative",
		"ART":   "article",
		"AUX":   "auxiliary",
		"BEN":   "benefactive",
		"CAUS":  "causative",
		"CLF":   "classifier",
		"COM":   "comitative",
		"COMP":  "complementizer",
		"COMPL": "completive",
		"COND":  "conditional",
		"COP":   "copula",
		"CVB":   "converb",
		"DAT":   "dative",
		"DECL":  "declarative",
		"DEF":   "definite",
		"DEM":   "demonstrative",
		"DET":   "determiner",
		"DIST":  "distal",
		"DISTR": "distributive",
		"DU":    "dual",
		"DUR":   "durative",
		"ERG":   "ergative",
		"EXCL":  "exclusive",
		"F":     "feminine",
		"FOC":   "focus",
		"FUT":   "future",
		"GEN":   "genitive",
		"IMP":   "imperative",
		"INCL":  "inclusive",
		"IND":   "indicative",
		"INDF":  "indefinite",
		"INF":   "infinitive",
		"INS":   "instrumental",
		"INTR":  "intransitive",
		"IPFV":  "imperfective",
		"IRR":   "irrealis",
		"LOC":   "locative",
		"M":     "masculine",
		"N":     "neuter",
		"NEG":   "negation, negative",
		"NMLZ":  "nominalizer/nominalization",
		"NOM":   "nominative",
		"OBJ":   "object",
		"OBL":   "oblique",
		"P":     "patient-like argument of canonical transitive verb",
		"PASS":  "passive",
		"PFV":   "perfective",
		"PL":    "plural",
		"POSS":  "possessive",
		"PRED":  "predicative",
		"PRF":   "perfect",
		"PRS":   "present",
		"PROG":  "progressive",
		"PROH":  "prohibitive",
		"PROX":  "proximal/proximate",
		"PST":   "past",
		"PTCP":  "participle",
		"PURP":  "purposive",
		"Q":     "question particle/marker",
		"QUOT":  "quotative",
		"RECP":  "reciprocal",
		"REFL":  "reflexive",
		"REL":   "relative",
		"RES":   "resultative",
		"S":     "single argument of canonical intransitive verb",
		"SBJ":   "subject",
		"SBJV":  "subjunctive",
		"SG":    "singular",
		"TR":    "transitive",
		"VOC":   "vocative",
	}
}
