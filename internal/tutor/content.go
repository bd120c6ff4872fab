package tutor

// LessonTip is a short study technique with an example.
type LessonTip struct {
	Title   string
	Detail  string
	Example string
}

// VocabularyEntry is looked up by its word or any of its synonyms.
type VocabularyEntry struct {
	Word     string
	Meaning  string
	Example  string
	Synonyms []string
}

// GrammarLesson pairs a topic keyword with its explanation.
type GrammarLesson struct {
	Topic       string
	Explanation string
}

// PracticeQuestion is one quiz item with the answer it is checked against.
type PracticeQuestion struct {
	Prompt         string
	ExpectedAnswer string
	Hint           string
}

// Content is the static material an Engine draws from.
// Grammar is ordered: when an input mentions several topics the first one in
// this list wins.
type Content struct {
	Tips       []LessonTip
	Vocabulary []VocabularyEntry
	Grammar    []GrammarLesson
	Questions  []PracticeQuestion
}

// DefaultContent returns the built-in lesson material.
func DefaultContent() Content {
	return Content{
		Tips: []LessonTip{
			{
				Title:   "Shadow native speakers",
				Detail:  "Listen to a short clip, then repeat it aloud. Focus on intonation and chunking phrases rather than individual words.",
				Example: "Try shadowing the phrase: 'I didn't catch that, could you say it again?'",
			},
			{
				Title:   "Upgrade simple verbs",
				Detail:  "Replace basic verbs like 'get' or 'do' with precise alternatives to sound more natural.",
				Example: "Instead of 'get better', try 'improve'. Instead of 'do exercise', try 'work out'.",
			},
			{
				Title:   "Use time markers",
				Detail:  "Words like 'already', 'yet', 'still', and 'just' clarify when actions happen and pair well with perfect tenses.",
				Example: "'I've already eaten, but I'm still hungry.'",
			},
		},
		Vocabulary: []VocabularyEntry{
			{
				Word:     "concise",
				Meaning:  "Expressing something clearly in a few words.",
				Example:  "Your email was concise and easy to follow.",
				Synonyms: []string{"brief", "succinct", "to the point"},
			},
			{
				Word:     "nuance",
				Meaning:  "A subtle difference in meaning, sound, or feeling.",
				Example:  "He explained the nuance between 'listen' and 'hear'.",
				Synonyms: []string{"subtlety", "shade", "distinction"},
			},
			{
				Word:     "reliable",
				Meaning:  "Consistently good in quality or performance; dependable.",
				Example:  "She is a reliable teammate who meets every deadline.",
				Synonyms: []string{"dependable", "trustworthy", "steady"},
			},
			{
				Word:     "curious",
				Meaning:  "Eager to learn or know something.",
				Example:  "Stay curious and ask why native speakers use certain phrases.",
				Synonyms: []string{"inquisitive", "interested", "eager"},
			},
		},
		Grammar: []GrammarLesson{
			{
				Topic:       "present perfect",
				Explanation: "Use it to connect past actions with the present. Structure: have/has + past participle (e.g., 'I have visited London twice.').",
			},
			{
				Topic:       "conditionals",
				Explanation: "Zero: facts (If you heat ice, it melts). First: likely future (If it rains, we'll stay in). Second: unreal present (If I had time, I would travel). Third: unreal past (If I had studied, I would have passed).",
			},
			{
				Topic:       "phrasal verbs",
				Explanation: "Combine verbs with particles (look up, run into). The meaning often changes, so learn them in context with an object (e.g., 'look up a word').",
			},
			{
				Topic:       "articles",
				Explanation: "Use 'a/an' for non-specific singular nouns, 'the' for specific items or when both speaker and listener know the reference. Zero article with plural or uncountable nouns when speaking generally.",
			},
			{
				Topic:       "prepositions",
				Explanation: "'In' for months/years/long periods, 'on' for days/dates, 'at' for precise times/locations. Check collocations: 'interested in', 'good at'.",
			},
		},
		Questions: []PracticeQuestion{
			{
				Prompt:         "Rewrite in natural English: 'I go to gym yesterday.'",
				ExpectedAnswer: "I went to the gym yesterday.",
				Hint:           "Use past tense and include an article before 'gym'.",
			},
			{
				Prompt:         "Respond politely: Someone says 'Could you help me move this table?'",
				ExpectedAnswer: "Sure, I'd be happy to help.",
				Hint:           "Start with a friendly confirmation and keep it short.",
			},
			{
				Prompt:         "Choose the best option: 'I have lived / lived in Paris since 2019.'",
				ExpectedAnswer: "I have lived in Paris since 2019.",
				Hint:           "Use the perfect tense to connect past and present.",
			},
		},
	}
}
