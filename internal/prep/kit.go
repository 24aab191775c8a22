package prep

// Kit is the bundled starter content shown before anything is generated.
type Kit struct {
	Roadmap []RoadmapItem
	SQL     []Question
	DSA     []Question
}

// StarterKit returns the offline "48-Hour Interview Survival Kit". Each call
// returns fresh slices and fresh question IDs.
func StarterKit() Kit {
	roadmap := []RoadmapItem{
		{Day: 1, TimeRange: "09:00 - 12:00", Activity: "The Essentials", FocusArea: "SQL Core", Details: "Group By, Having, Joins (Left vs Inner)."},
		{Day: 1, TimeRange: "13:00 - 17:00", Activity: "The Essentials", FocusArea: "DSA Core", Details: "Arrays, Hash Maps, Strings."},
		{Day: 1, TimeRange: "18:00 - 21:00", Activity: "Review", FocusArea: "Patterns", Details: "Aggregate functions, 'Nth Highest' logic."},
		{Day: 2, TimeRange: "09:00 - 12:00", Activity: "Advanced Logic", FocusArea: "DSA Advanced", Details: "Linked Lists, Stacks, Recursion basics."},
		{Day: 2, TimeRange: "13:00 - 17:00", Activity: "Advanced Logic", FocusArea: "SQL Advanced", Details: "Subqueries, Window Functions, Case Statements."},
		{Day: 2, TimeRange: "18:00 - 21:00", Activity: "Final Prep", FocusArea: "Mock Interview", Details: "Behavioral Questions & Confidence building."},
	}

	sql := []Question{
		{
			ID: NewID(), Category: CategorySQL, Topic: "Aggregation", Difficulty: DifficultyMedium, Level: LevelBasic,
			Question: "Find customers who have ordered more than $500 in total.",
			Answer:   "The Trap: You cannot use WHERE to filter aggregates. Use HAVING.\n\nSELECT customer_id, SUM(amount) as total\nFROM orders\nGROUP BY customer_id\nHAVING SUM(amount) > 500;",
		},
		{
			ID: NewID(), Category: CategorySQL, Topic: "Joins", Difficulty: DifficultyMedium, Level: LevelBasic,
			Question: "Find Employees who do NOT belong to any Department.",
			Answer:   "Logic: Use a Left Join and look for NULLs on the right side.\n\nSELECT e.name \nFROM employees e\nLEFT JOIN departments d ON e.dept_id = d.id\nWHERE d.id IS NULL;",
		},
		{
			ID: NewID(), Category: CategorySQL, Topic: "Ranking", Difficulty: DifficultyMedium, Level: LevelAdvanced,
			Question: "Find the 3rd highest salary.",
			Answer:   "Logic: Use DENSE_RANK() to handle ties correctly.\n\nSELECT salary FROM (\n    SELECT salary, DENSE_RANK() OVER (ORDER BY salary DESC) as rnk\n    FROM salaries\n) WHERE rnk = 3;",
		},
		{
			ID: NewID(), Category: CategorySQL, Topic: "Logic", Difficulty: DifficultyEasy, Level: LevelBasic,
			Question: "Find emails that appear more than once.",
			Answer:   "SELECT email, COUNT(email)\nFROM users\nGROUP BY email\nHAVING COUNT(email) > 1;",
		},
	}

	dsa := []Question{
		{
			ID: NewID(), Category: CategoryDSA, Topic: "Hash Map", Difficulty: DifficultyEasy, Level: LevelBasic,
			Question: "Two Sum: Find indices of two numbers that add up to a target.",
			Answer:   "Goal: O(n) lookup.\nLogic: Iterate array. Calculate `diff = target - current`. If `diff` is in map, you found the pair. If not, add current to map.",
		},
		{
			ID: NewID(), Category: CategoryDSA, Topic: "Frequency Count", Difficulty: DifficultyEasy, Level: LevelBasic,
			Question: "Valid Anagram: Check if 'silent' and 'listen' are anagrams.",
			Answer:   "Logic: Use an array of size 26 (for a-z). Increment index for first string, decrement for second. All must be zero at end.",
		},
		{
			ID: NewID(), Category: CategoryDSA, Topic: "Two Pointers", Difficulty: DifficultyEasy, Level: LevelBasic,
			Question: "Palindrome Check: Check if string reads same forward/backward.",
			Answer:   "Logic: Pointer L at start, Pointer R at end. While L < R, check if chars match. Move them inward.",
		},
		{
			ID: NewID(), Category: CategoryDSA, Topic: "Greedy / Array", Difficulty: DifficultyMedium, Level: LevelAdvanced,
			Question: "Stock Buy & Sell: Maximize profit from one buy/sell.",
			Answer:   "Logic: Track `min_price` so far. Loop through prices. `profit = current_price - min_price`. Update max profit if higher.",
		},
	}

	return Kit{Roadmap: roadmap, SQL: sql, DSA: dsa}
}
