package completion

// Message constants
const (
	MsgShort = "Generate shell completion script"
	MsgLong  = `To load completions:

Bash:
  $ source <(sortdir completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ sortdir completion bash > /etc/bash_completion.d/sortdir
  # macOS:
  $ sortdir completion bash > /usr/local/etc/bash_completion.d/sortdir

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ sortdir completion zsh > "${fpath[1]}/_sortdir"

Fish:
  $ sortdir completion fish | source
  # To load completions for each session, execute once:
  $ sortdir completion fish > ~/.config/fish/completions/sortdir.fish

PowerShell:
  PS> sortdir completion powershell | Out-String | Invoke-Expression`
)
