package scriptfile

// scriptSpec is the decoded form of a script document
type scriptSpec struct {
	Trees []treeSpec `toml:"tree" yaml:"trees"`
}

type treeSpec struct {
	Dirs    []dirSpec    `toml:"dir" yaml:"dirs"`
	Files   []fileSpec   `toml:"file" yaml:"files"`
	DirOps  []dirOpSpec  `toml:"dir_ops" yaml:"dir_ops"`
	FileOps []fileOpSpec `toml:"file_ops" yaml:"file_ops"`
}

type dirSpec struct {
	Path      string       `toml:"path" yaml:"path"`
	Recursive bool         `toml:"recursive" yaml:"recursive"`
	DirOps    []dirOpSpec  `toml:"dir_ops" yaml:"dir_ops"`
	FileOps   []fileOpSpec `toml:"file_ops" yaml:"file_ops"`
}

type fileSpec struct {
	Path string       `toml:"path" yaml:"path"`
	Ops  []fileOpSpec `toml:"ops" yaml:"ops"`
}

// dirOpSpec is a tagged directory operation, selected by Op
type dirOpSpec struct {
	Op        string    `toml:"op" yaml:"op"`
	Direction string    `toml:"direction" yaml:"direction"`
	Rule      *ruleSpec `toml:"rule" yaml:"rule"`
	Offset    int       `toml:"offset" yaml:"offset"`
}

// fileOpSpec is a tagged file operation, selected by Op
type fileOpSpec struct {
	Op        string       `toml:"op" yaml:"op"`
	Expr      *exprSpec    `toml:"expr" yaml:"expr"`
	Condition *ruleSpec    `toml:"condition" yaml:"condition"`
	Then      *fileOpSpec  `toml:"then" yaml:"then"`
	Else      *fileOpSpec  `toml:"else" yaml:"else"`
	Ops       []fileOpSpec `toml:"ops" yaml:"ops"`
}

// ruleSpec is a tagged match rule, selected by Kind
type ruleSpec struct {
	Kind    string    `toml:"kind" yaml:"kind"`
	Value   string    `toml:"value" yaml:"value"`
	Pattern string    `toml:"pattern" yaml:"pattern"`
	Lhs     *ruleSpec `toml:"lhs" yaml:"lhs"`
	Rhs     *ruleSpec `toml:"rhs" yaml:"rhs"`
	Operand *ruleSpec `toml:"operand" yaml:"operand"`
}

// exprSpec is a tagged expression, selected by Kind
type exprSpec struct {
	Kind        string        `toml:"kind" yaml:"kind"`
	Value       string        `toml:"value" yaml:"value"`
	Name        string        `toml:"name" yaml:"name"`
	Style       string        `toml:"style" yaml:"style"`
	Selection   string        `toml:"selection" yaml:"selection"`
	Inclusive   bool          `toml:"inclusive" yaml:"inclusive"`
	Pattern     string        `toml:"pattern" yaml:"pattern"`
	Input       *exprSpec     `toml:"input" yaml:"input"`
	Marker      *exprSpec     `toml:"marker" yaml:"marker"`
	Lhs         *exprSpec     `toml:"lhs" yaml:"lhs"`
	Rhs         *exprSpec     `toml:"rhs" yaml:"rhs"`
	Content     *exprSpec     `toml:"content" yaml:"content"`
	Match       *exprSpec     `toml:"match" yaml:"match"`
	Replacement *exprSpec     `toml:"replacement" yaml:"replacement"`
	Position    *positionSpec `toml:"position" yaml:"position"`
	Base        *exprSpec     `toml:"base" yaml:"base"`
	Text        *exprSpec     `toml:"text" yaml:"text"`
	Condition   *ruleSpec     `toml:"condition" yaml:"condition"`
	Then        *exprSpec     `toml:"then" yaml:"then"`
	Else        *exprSpec     `toml:"else" yaml:"else"`
}

// positionSpec is a tagged insert position, selected by Kind
type positionSpec struct {
	Kind    string `toml:"kind" yaml:"kind"`
	Index   int    `toml:"index" yaml:"index"`
	Marker  string `toml:"marker" yaml:"marker"`
	Pattern string `toml:"pattern" yaml:"pattern"`
}
