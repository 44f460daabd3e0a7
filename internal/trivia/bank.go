package trivia

// questionBank is the fixed pool /trivia draws from. Answers are stored
// normalized (lowercase, no surrounding whitespace).
var questionBank = []Question{
	{Text: "What is the largest planet in the solar system?", Answer: "jupiter"},
	{Text: "What liquor is traditionally used in a mojito?", Answer: "rum"},
	{Text: "How many strings does a standard guitar have?", Answer: "6"},
	{Text: "What is the chemical symbol for gold?", Answer: "au"},
	{Text: "Which country invented pilsner beer?", Answer: "czech republic"},
	{Text: "What is the capital of Japan?", Answer: "tokyo"},
	{Text: "How many sides does a hexagon have?", Answer: "6"},
	{Text: "What fruit is traditionally dropped in a cider press?", Answer: "apple"},
	{Text: "Which ocean is the largest?", Answer: "pacific"},
	{Text: "What year did the first moon landing happen?", Answer: "1969"},
	{Text: "What is the smallest prime number?", Answer: "2"},
	{Text: "Which board game features the squares Boardwalk and Park Place?", Answer: "monopoly"},
	{Text: "What gas do plants absorb from the atmosphere?", Answer: "carbon dioxide"},
	{Text: "How many cards are in a standard deck, jokers excluded?", Answer: "52"},
	{Text: "What is the longest river in the world?", Answer: "nile"},
}
