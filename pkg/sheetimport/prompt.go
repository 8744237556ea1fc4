package sheetimport

// recognitionPrompt instructs the model to transcribe numbered (jianpu)
// notation into the dialect the parser accepts. The dialect is spelled
// out in full because models otherwise invent their own octave and
// duration markers.
const recognitionPrompt = `You are reading a page of jianpu (numbered musical notation).
Transcribe it exactly into the following plain-text dialect, one line of
music per output line:

- Scale degrees are the digits 1-7. A rest is 0.
- Prefix h for the octave above (h1..h7), l for the octave below (l1..l7).
  Rests never take a prefix.
- Suffix d marks a dotted note (1.5x duration), e.g. 5d or h3d.
- A dash - extends the previous note by one beat. Write one dash per
  extension beat, separated by spaces: "3 - -" is a three-beat note.
- Notes played in half the time (underlined digits in the source) are
  grouped in parentheses separated by spaces: (1 2) or (1 2 3).
  Groups never nest.
- Separate every token with a space. You may keep barlines as |.

Also read the title and the tempo marking (beats per minute). If the
page shows no tempo, estimate a sensible one from the style and write
your reasoning in notes. Report anything you could not transcribe
faithfully in notes as well.`
