/*
Package runner implements the line-oriented driver around the scrambler engine.

It pairs line i of a message stream with line i of a command stream, runs the
pair through the engine in the requested direction, and hands each result to
a RecordWriter. Trailing whitespace and line terminators are stripped before
parsing, and every output record ends with a single newline.

# Key Components

  - Runner: Reads both streams, checks they are aligned, and stops at the first failing line.
  - RecordWriter: Output strategy. TextWriter writes bare results, JSONWriter writes NDJSON.
  - SanitizeInput: Size and character policy for inputs arriving from network adapters.

# Usage

	r := runner.NewRunner(scrambler.New())
	sum, err := r.Run(ctx, msgFile, cmdFile, runner.NewTextWriter(out), domain.Decode)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%d lines", sum.Lines)
*/
package runner
