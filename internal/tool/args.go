package tool

// Argument structs. Field tags drive both the advertised input schema and
// validation; json names are the wire argument names.

type AskArgs struct {
	Prompt          string   `json:"prompt" jsonschema:"required,minLength=1,maxLength=500000" jsonschema_description:"The prompt to send."`
	System          string   `json:"system,omitempty" jsonschema:"maxLength=100000" jsonschema_description:"Optional system instruction."`
	Model           string   `json:"model,omitempty" jsonschema:"maxLength=100" jsonschema_description:"Model id. Defaults to the configured model for this tool."`
	Temperature     *float64 `json:"temperature,omitempty" jsonschema:"minimum=0,maximum=2" jsonschema_description:"Sampling temperature."`
	MaxOutputTokens *int     `json:"max_output_tokens,omitempty" jsonschema:"minimum=1,maximum=128000" jsonschema_description:"Upper bound on generated tokens."`
}

type SearchWebArgs struct {
	Query       string `json:"query" jsonschema:"required,minLength=1,maxLength=10000" jsonschema_description:"What to search the web for."`
	ContextSize string `json:"context_size,omitempty" jsonschema:"enum=low,enum=medium,enum=high,default=medium" jsonschema_description:"How much search context the model retrieves."`
	Model       string `json:"model,omitempty" jsonschema:"maxLength=100" jsonschema_description:"Model id. Defaults to the configured model for this tool."`
}

type ReasonArgs struct {
	Prompt string `json:"prompt" jsonschema:"required,minLength=1,maxLength=500000" jsonschema_description:"The problem to reason about."`
	Effort string `json:"effort,omitempty" jsonschema:"enum=low,enum=medium,enum=high,default=high" jsonschema_description:"Reasoning effort."`
	System string `json:"system,omitempty" jsonschema:"maxLength=100000" jsonschema_description:"Optional system instruction."`
	Model  string `json:"model,omitempty" jsonschema:"maxLength=100" jsonschema_description:"Model id. Defaults to the configured reasoning model."`
}

type ExecuteCodeArgs struct {
	Task  string `json:"task" jsonschema:"required,minLength=1,maxLength=100000" jsonschema_description:"Task to solve by running Python in a sandbox."`
	Model string `json:"model,omitempty" jsonschema:"maxLength=100" jsonschema_description:"Model id. Defaults to the configured model for this tool."`
}

type FetchURLArgs struct {
	URL      string `json:"url" jsonschema:"required,minLength=1,maxLength=2048" jsonschema_description:"http or https URL of the page."`
	Question string `json:"question,omitempty" jsonschema:"maxLength=10000" jsonschema_description:"Question about the page. Defaults to a summary."`
	Model    string `json:"model,omitempty" jsonschema:"maxLength=100" jsonschema_description:"Model id. Defaults to the configured model for this tool."`
}

type UploadFileArgs struct {
	Path  string `json:"path" jsonschema:"required,minLength=1,maxLength=4096" jsonschema_description:"Local path of the file."`
	Query string `json:"query,omitempty" jsonschema:"maxLength=10000" jsonschema_description:"Optional question to answer about the file."`
	Model string `json:"model,omitempty" jsonschema:"maxLength=100" jsonschema_description:"Model id. Defaults to the configured model for this tool."`
}

type AskAboutFileArgs struct {
	FileID   string `json:"file_id" jsonschema:"required,minLength=1,maxLength=100" jsonschema_description:"File id returned by upload_file."`
	Question string `json:"question" jsonschema:"required,minLength=1,maxLength=10000" jsonschema_description:"Question about the file."`
	Model    string `json:"model,omitempty" jsonschema:"maxLength=100" jsonschema_description:"Model id. Defaults to the configured model for this tool."`
}

type GenerateImageArgs struct {
	Prompt       string `json:"prompt" jsonschema:"required,minLength=1,maxLength=32000" jsonschema_description:"Description of the image."`
	N            int    `json:"n,omitempty" jsonschema:"minimum=1,maximum=10,default=1" jsonschema_description:"Number of images."`
	Size         string `json:"size,omitempty" jsonschema:"enum=auto,enum=1024x1024,enum=1536x1024,enum=1024x1536,enum=256x256,enum=512x512,enum=1792x1024,enum=1024x1792,default=auto" jsonschema_description:"Image size."`
	Quality      string `json:"quality,omitempty" jsonschema:"enum=auto,enum=high,enum=medium,enum=low,enum=hd,enum=standard,default=auto" jsonschema_description:"Image quality."`
	Background   string `json:"background,omitempty" jsonschema:"enum=auto,enum=transparent,enum=opaque" jsonschema_description:"Background handling."`
	OutputFormat string `json:"output_format,omitempty" jsonschema:"enum=png,enum=jpeg,enum=webp,default=png" jsonschema_description:"Encoding of the saved files."`
	SavePath     string `json:"save_path,omitempty" jsonschema:"maxLength=4096" jsonschema_description:"Where to save. Several images get _0, _1, ... suffixes."`
	Model        string `json:"model,omitempty" jsonschema:"maxLength=100" jsonschema_description:"Model id. Defaults to the configured image model."`
}

type EditImageArgs struct {
	ImagePath    string `json:"image_path" jsonschema:"required,minLength=1,maxLength=4096" jsonschema_description:"Local path of the image to edit (png, jpeg or webp)."`
	Prompt       string `json:"prompt" jsonschema:"required,minLength=1,maxLength=32000" jsonschema_description:"Description of the edit."`
	MaskPath     string `json:"mask_path,omitempty" jsonschema:"maxLength=4096" jsonschema_description:"Optional png mask; transparent areas are edited."`
	Size         string `json:"size,omitempty" jsonschema:"enum=auto,enum=1024x1024,enum=1536x1024,enum=1024x1536,enum=256x256,enum=512x512,default=auto" jsonschema_description:"Image size."`
	Quality      string `json:"quality,omitempty" jsonschema:"enum=auto,enum=high,enum=medium,enum=low,enum=standard,default=auto" jsonschema_description:"Image quality."`
	N            int    `json:"n,omitempty" jsonschema:"minimum=1,maximum=10,default=1" jsonschema_description:"Number of images."`
	OutputFormat string `json:"output_format,omitempty" jsonschema:"enum=png,enum=jpeg,enum=webp,default=png" jsonschema_description:"Encoding of the saved files."`
	SavePath     string `json:"save_path,omitempty" jsonschema:"maxLength=4096" jsonschema_description:"Where to save. Several images get _0, _1, ... suffixes."`
	Model        string `json:"model,omitempty" jsonschema:"maxLength=100" jsonschema_description:"Model id. Defaults to the configured image model."`
}

type AnalyzeImageArgs struct {
	ImagePath string `json:"image_path" jsonschema:"required,minLength=1,maxLength=4096" jsonschema_description:"Local path of the image."`
	Prompt    string `json:"prompt" jsonschema:"required,minLength=1,maxLength=10000" jsonschema_description:"What to ask about the image."`
	Detail    string `json:"detail,omitempty" jsonschema:"enum=low,enum=high,enum=auto,default=auto" jsonschema_description:"Vision detail level."`
	Model     string `json:"model,omitempty" jsonschema:"maxLength=100" jsonschema_description:"Model id. Defaults to the configured model for this tool."`
}

type DescribeImageArgs struct {
	ImagePath string `json:"image_path" jsonschema:"required,minLength=1,maxLength=4096" jsonschema_description:"Local path of the image."`
	Prompt    string `json:"prompt,omitempty" jsonschema:"maxLength=1000" jsonschema_description:"Optional focus for the description."`
	Model     string `json:"model,omitempty" jsonschema:"maxLength=100" jsonschema_description:"Model id. Defaults to the configured model for this tool."`
}

type TextToSpeechArgs struct {
	Text         string  `json:"text" jsonschema:"required,minLength=1,maxLength=4096" jsonschema_description:"Text to speak."`
	Voice        string  `json:"voice,omitempty" jsonschema:"enum=alloy,enum=ash,enum=ballad,enum=coral,enum=echo,enum=fable,enum=nova,enum=onyx,enum=sage,enum=shimmer,enum=verse,default=alloy" jsonschema_description:"Voice."`
	Instructions string  `json:"instructions,omitempty" jsonschema:"maxLength=1000" jsonschema_description:"Optional delivery instructions (tone, pace)."`
	Speed        float64 `json:"speed,omitempty" jsonschema:"minimum=0.25,maximum=4,default=1" jsonschema_description:"Playback speed."`
	Format       string  `json:"format,omitempty" jsonschema:"enum=mp3,enum=opus,enum=aac,enum=flac,enum=wav,enum=pcm,default=mp3" jsonschema_description:"Audio encoding."`
	SavePath     string  `json:"save_path,omitempty" jsonschema:"maxLength=4096" jsonschema_description:"Where to save the audio."`
	Model        string  `json:"model,omitempty" jsonschema:"maxLength=100" jsonschema_description:"Model id. Defaults to the configured speech model."`
}

type TranscribeAudioArgs struct {
	AudioPath string `json:"audio_path" jsonschema:"required,minLength=1,maxLength=4096" jsonschema_description:"Local path of the audio file."`
	Language  string `json:"language,omitempty" jsonschema:"maxLength=100" jsonschema_description:"ISO-639-1 language hint."`
	Prompt    string `json:"prompt,omitempty" jsonschema:"maxLength=1000" jsonschema_description:"Optional context to guide the transcript."`
	Model     string `json:"model,omitempty" jsonschema:"maxLength=100" jsonschema_description:"Model id. Defaults to the configured transcription model."`
}

type ListModelsArgs struct{}
