package scenario

// #region scenario

// Scenario is one puzzle record. Narrative is shown to every questioner;
// Solution is visible only to the oracle.
type Scenario struct {
	Title     string `yaml:"title" json:"title"`
	Narrative string `yaml:"narrative" json:"narrative"`
	Solution  string `yaml:"solution" json:"solution"`
}

// #endregion scenario

// #region builtin-bank

// BuiltinBank returns the built-in puzzle collection.
func BuiltinBank() []Scenario {
	return []Scenario{
		{
			Title: "The Man in the Seaside Restaurant",
			Narrative: "A man walks into a seaside restaurant and orders turtle soup.\n" +
				"After a single taste his face goes pale. He leaves the restaurant and takes his own life.\n" +
				"Why?",
			Solution: "Years ago the man survived a shipwreck. Stranded on a desert island, " +
				"his companions fed him what they said was turtle meat, and so he lived.\n" +
				"In the seaside restaurant he tastes real turtle soup for the first time and " +
				"realizes the flavor is nothing like what he ate back then. His companions had " +
				"lied to him: what he ate was the flesh of a dead shipmate.\n" +
				"Crushed by the realization, he kills himself.",
		},
		{
			Title: "The Man in Black in the Desert",
			Narrative: "A man dressed all in black lies dead in the desert.\n" +
				"Next to him is half a matchstick. There are no footprints anywhere.\n" +
				"How did he die?",
			Solution: "The man was aboard a failing aircraft. There were not enough parachutes, " +
				"so the passengers drew matchsticks to decide who had to jump.\n" +
				"He drew the short one and jumped without a working parachute, falling to his " +
				"death in the desert. The half matchstick beside him is what he drew.",
		},
		{
			Title: "The Man in the Elevator",
			Narrative: "A man lives on the 10th floor of an apartment building.\n" +
				"Every morning he rides the elevator down to the ground floor.\n" +
				"Coming home, he rides it only to the 7th floor and walks the stairs the rest of the way.\n" +
				"On rainy days, or when someone else is in the elevator, he rides straight to the 10th.\n" +
				"Why?",
			Solution: "The man is very short. He can only reach the button for the 7th floor, " +
				"so he walks the last three flights.\n" +
				"On rainy days he carries an umbrella and uses it to press the 10th-floor button; " +
				"when someone else is in the elevator he asks them to press it for him.",
		},
	}
}

// #endregion builtin-bank
