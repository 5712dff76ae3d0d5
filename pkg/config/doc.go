/*
Package config loads the word tables for changer from a file.

	            +-------------+
	            |   Config    |
	            | (Vocabulary)|
	            +------+------+
	                   |
	   +-------+-------+-------+-------+
	   |       |               |       |
	+--+---+ +-+----+      +---+--+ +--+---+
	| YAML | | JSON |      | TOML | | HCL  |
	+------+ +------+      +------+ +------+

🎯 Purpose:
- Reads a vocabulary, pseudo words, splitters and keyword lists from disk
- Picks a parser by file extension
- Validates role names and words
- Fills anything left out with the built-in defaults

🔄 Flow:
1. Load reads the file
2. GetParser picks the parser registered for the extension
3. Validate checks the decoded values
4. Vocab converts the result into a vocab.Config

📝 A list that is present but empty is kept empty: `splitters: []` turns
multi-command input off, while leaving `splitters` out keeps the default
"and"/"dan".

🔍 Example:

	cfg, err := config.Load(ctx, ".changer.yaml")
	if err != nil {
		return err
	}
	interp := command.New(cfg.Vocab())
*/
package config
