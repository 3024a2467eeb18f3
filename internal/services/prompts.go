package services

import (
	"fmt"
)

const (
	routineSystemMessage = "You are a helpful assistant."
	recipeSystemMessage  = "You are an expert assistant in nutrition and recipes."

	routineSchemaName = "routine_schema"
	recipeSchemaName  = "recipes_schema"
)

func routinePrompt(age int, weight, height float64, objective string, trainingDays int) string {
	return fmt.Sprintf("You can make an exercise routine for %d days for a person who is %d years old "+
		"and weighs %g KG with a height of %gCM and her goal is %s. "+
		"The routine should last a minimum of 1 hour to 1.5 hours.",
		trainingDays, age, weight, height, objective)
}

func recipePrompt(age int, weight, height float64, objective string) string {
	return fmt.Sprintf(`Generate a structured JSON containing meal types (Breakfast, Lunch, Dinner).
Each meal type should include a list of recipes tailored for a person with the following characteristics:
- Age: %d years old
- Weight: %g kg
- Height: %g cm
- Objective: %s

For each recipe, include:
- 'name': the name of the recipe.
- 'ingredients': a list of specific ingredients.
- 'nutritional': a list of nutritional information (calories, proteins, fats, etc.).
- 'videoExample': a link to a video (realistic or fictional).
- 'imgUrl': a link to an image (realistic or fictional).

Generate at least 5 unique recipes for each meal type (Breakfast, Lunch, Dinner) and ensure the recipes are appropriate for the specified person and their objective.`,
		age, weight, height, objective)
}

func stringProp() map[string]any { return map[string]any{"type": "string"} }
func numberProp() map[string]any { return map[string]any{"type": "number"} }
func uriProp() map[string]any    { return map[string]any{"type": "string", "format": "uri"} }

func arrayOf(items map[string]any) map[string]any {
	return map[string]any{"type": "array", "items": items}
}

func object(props map[string]any, required ...string) map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

// routineSchema describes {routines: [{exercise: [{exercise, duration, calories, sets, reps, imgUrl, videoUrl}]}]}
func routineSchema() map[string]any {
	exercise := object(map[string]any{
		"exercise": stringProp(),
		"duration": stringProp(),
		"calories": numberProp(),
		"sets":     numberProp(),
		"reps":     numberProp(),
		"imgUrl":   uriProp(),
		"videoUrl": uriProp(),
	}, "exercise", "duration", "calories", "sets", "reps", "imgUrl", "videoUrl")

	day := object(map[string]any{"exercise": arrayOf(exercise)}, "exercise")

	return object(map[string]any{"routines": arrayOf(day)}, "routines")
}

// recipeSchema describes {recipes: [{type, list: [{name, ingredients, nutritional, videoExample, imgUrl}]}]}
func recipeSchema() map[string]any {
	recipe := object(map[string]any{
		"name":         stringProp(),
		"ingredients":  arrayOf(stringProp()),
		"nutritional":  arrayOf(stringProp()),
		"videoExample": uriProp(),
		"imgUrl":       uriProp(),
	}, "name", "ingredients", "nutritional", "videoExample", "imgUrl")

	meal := object(map[string]any{
		"type": stringProp(),
		"list": arrayOf(recipe),
	}, "type", "list")

	return object(map[string]any{"recipes": arrayOf(meal)}, "recipes")
}
